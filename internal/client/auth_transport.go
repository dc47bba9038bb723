package client

import "net/http"

// authTransport attaches the bearer credential and the JSON negotiation headers.
// The token is pulled from the TokenSource on every request and never logged.
type authTransport struct {
	next      http.RoundTripper
	tokens    TokenSource
	userAgent string
}

func newAuthTransport(next http.RoundTripper, tokens TokenSource, userAgent string) http.RoundTripper {
	return &authTransport{next: next, tokens: tokens, userAgent: userAgent}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if token := t.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if req.Body != nil && req.Body != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}
