package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// compressionTransport advertises gzip, brotli and zstd and decodes the response
// body transparently, so JSON decoding never sees compressed bytes.
type compressionTransport struct {
	next http.RoundTripper
}

func newCompressionTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &compressionTransport{next: next}
}

func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", "gzip, br, zstd")
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	var decoded io.ReadCloser
	switch outermostEncoding(resp.Header.Get("Content-Encoding")) {
	case "":
		return resp, nil
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = gz
	case "br":
		decoded = io.NopCloser(brotli.NewReader(resp.Body))
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = zr.IOReadCloser()
	default:
		return resp, nil
	}

	resp.Body = &decodedBody{decoder: decoded, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true

	return resp, nil
}

// decodedBody closes both the decoder and the underlying network body.
type decodedBody struct {
	decoder io.ReadCloser
	raw     io.ReadCloser
}

func (d *decodedBody) Read(p []byte) (int, error) {
	return d.decoder.Read(p)
}

func (d *decodedBody) Close() error {
	decErr := d.decoder.Close()
	rawErr := d.raw.Close()
	if decErr != nil {
		return decErr
	}
	return rawErr
}

// outermostEncoding returns the last coding of a Content-Encoding list (the one
// applied last, so removed first), lower-cased. "identity" counts as none.
func outermostEncoding(header string) string {
	parts := strings.Split(header, ",")
	enc := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if enc == "identity" {
		return ""
	}
	return enc
}
