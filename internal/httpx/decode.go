package httpx

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// AcceptEncoding is the value clients send so servers may compress bodies.
// Setting it by hand disables net/http transparent gzip, so readBody handles
// both encodings itself.
const AcceptEncoding = "br, gzip"

// readBody reads and closes resp.Body, undoing any Content-Encoding the
// server applied.
func readBody(resp *http.Response) ([]byte, error) {
	enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	switch enc {
	case "", "identity":
		return readAndClose(resp.Body)
	case "br":
		defer resp.Body.Close()
		return io.ReadAll(brotli.NewReader(resp.Body))
	case "gzip", "x-gzip":
		defer resp.Body.Close()
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("httpx: gzip body: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("httpx: unsupported content-encoding %q", enc)
	}
}
