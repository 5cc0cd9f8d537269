package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPError carries status/body for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 900))
}

// DecodeError means the request succeeded but the body was not the JSON the
// caller asked for.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("json parse error: %v body=%s", e.Err, snippet(e.Body, 900))
}

func (e *DecodeError) Unwrap() error { return e.Err }

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// RetryConfig controls retry behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// If true, retry any 5xx.
	Retry5xx bool

	// Extra statuses to retry (e.g. 429, 408).
	RetryStatuses map[int]bool
}

// NoRetry makes a single attempt and surfaces the first failure.
func NoRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 1}
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 8,
		BaseDelay:   700 * time.Millisecond,
		MaxDelay:    30 * time.Second,
		Retry5xx:    true,
		RetryStatuses: map[int]bool{
			http.StatusTooManyRequests:    true, // 429
			http.StatusRequestTimeout:     true, // 408
			http.StatusTooEarly:           true, // 425 (rare)
			http.StatusServiceUnavailable: true, // 503
			http.StatusBadGateway:         true, // 502
			http.StatusGatewayTimeout:     true, // 504
		},
	}
}

func (cfg RetryConfig) normalized() RetryConfig {
	if cfg.MaxAttempts <= 0 {
		return DefaultRetryConfig()
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 700 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.RetryStatuses == nil {
		cfg.RetryStatuses = DefaultRetryConfig().RetryStatuses
	}
	return cfg
}

// attemptResult is the outcome of one round trip. wait < 0 means the error
// is final.
type attemptResult struct {
	resp *http.Response
	body []byte
	err  error
	wait time.Duration
}

func attempt(client *http.Client, req *http.Request, cfg RetryConfig) attemptResult {
	resp, err := client.Do(req)
	if err != nil {
		if isRetryableNetErr(err) {
			return attemptResult{err: err}
		}
		return attemptResult{err: err, wait: -1}
	}

	body, err := readBody(resp)
	if err != nil {
		if isRetryableNetErr(err) {
			return attemptResult{resp: resp, body: body, err: err}
		}
		return attemptResult{resp: resp, body: body, err: err, wait: -1}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return attemptResult{resp: resp, body: body}
	}

	herr := &HTTPError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       body,
	}
	if isRetryableStatus(resp.StatusCode, cfg) {
		return attemptResult{resp: resp, body: body, err: herr, wait: ParseRetryAfter(resp)}
	}
	return attemptResult{resp: resp, body: body, err: herr, wait: -1}
}

// DoWithRetry executes a request (built by buildReq) with retries.
// It always reads the full body (even on error) so the underlying TCP connection
// can be reused by http.Transport. Bodies sent with Content-Encoding br or gzip
// are returned decoded. On failure after the last attempt the response of that
// attempt is returned alongside the error when there was one.
func DoWithRetry(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	cfg RetryConfig,
) (*http.Response, []byte, error) {
	cfg = cfg.normalized()

	for n := 1; ; n++ {
		req, err := buildReq(ctx)
		if err != nil {
			return nil, nil, err
		}

		res := attempt(client, req, cfg)
		if res.err == nil || res.wait < 0 || n >= cfg.MaxAttempts {
			return res.resp, res.body, res.err
		}

		if err := sleepBackoff(ctx, n, cfg.BaseDelay, cfg.MaxDelay, res.wait); err != nil {
			return nil, nil, err
		}
	}
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func isRetryableStatus(code int, cfg RetryConfig) bool {
	if cfg.RetryStatuses != nil && cfg.RetryStatuses[code] {
		return true
	}
	if cfg.Retry5xx && code >= 500 && code <= 599 {
		return true
	}
	return false
}

func sleepBackoff(ctx context.Context, attempt int, base, max time.Duration, retryAfter time.Duration) error {
	sleep := retryAfter
	if sleep <= 0 {
		sleep = base * time.Duration(1<<(attempt-1))
		if sleep > max {
			sleep = max
		}
		// jitter 0..400ms
		sleep += time.Duration(rand.Intn(400)) * time.Millisecond
	}

	t := time.NewTimer(sleep)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isRetryableNetErr(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}

	// common transient I/O errors
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof")
}

// ParseRetryAfter parses Retry-After header (seconds or HTTP date).
// Returns 0 when header is missing/invalid.
func ParseRetryAfter(resp *http.Response) time.Duration {
	v := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// DoJSON runs DoWithRetry and unmarshals the body into out. A body that does
// not decode is reported as *DecodeError; transport and status failures are
// returned as DoWithRetry reports them.
func DoJSON(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
	out any,
	cfg RetryConfig,
) error {
	_, body, err := DoWithRetry(ctx, client, buildReq, cfg)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Body: body, Err: err}
	}
	return nil
}
