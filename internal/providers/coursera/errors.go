package coursera

import (
	"errors"
	"fmt"
)

// ErrMissingKey is wrapped by ParseError when the body is valid JSON but a
// required key is absent or null.
var ErrMissingKey = errors.New("missing key")

// NetworkError reports a request that failed in transport or came back with
// a non-2xx status. Err is an *httpx.HTTPError in the latter case.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("coursera: %s: request %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a body that is not JSON or lacks the expected shape.
type ParseError struct {
	Op     string
	URL    string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("coursera: %s: parse %s: %s: %v", e.Op, e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("coursera: %s: parse %s: %v", e.Op, e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func missingKey(op, url, path string) *ParseError {
	return &ParseError{Op: op, URL: url, Reason: path, Err: ErrMissingKey}
}
