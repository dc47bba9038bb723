package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request received by a TMDBStub.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         map[string]string
	Authorization string
	Body          []byte
}

// StubResponse is the canned answer for one route.
type StubResponse struct {
	Status int
	Body   string
	// Handler, when set, replaces Status/Body.
	Handler http.HandlerFunc
}

// TMDBStub is an httptest server standing in for the TMDB REST API.
// Routes are keyed by "METHOD /path" (query string excluded).
// Unknown routes answer 404 with a TMDB style error body.
type TMDBStub struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]StubResponse
	requests []RecordedRequest
}

// NewTMDBStub starts a stub server that is closed when the test ends.
// This is a test helper and should not be used in production code.
func NewTMDBStub(t *testing.T) *TMDBStub {
	t.Helper()
	stub := &TMDBStub{routes: make(map[string]StubResponse)}
	stub.Server = httptest.NewServer(http.HandlerFunc(stub.serve))
	t.Cleanup(stub.Server.Close)
	return stub
}

// URL is the base URL to configure as tmdb.base_url.
func (s *TMDBStub) URL() string {
	return s.Server.URL + "/3"
}

// Handle registers a canned JSON response for method and path (path without the /3 prefix).
func (s *TMDBStub) Handle(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = StubResponse{Status: status, Body: body}
}

// HandleFunc registers a custom handler for method and path.
func (s *TMDBStub) HandleFunc(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = StubResponse{Handler: h}
}

// HandleJSON registers a 200 response with v encoded as JSON.
func (s *TMDBStub) HandleJSON(method, path string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testutil: encode stub body: %v", err))
	}
	s.Handle(method, path, http.StatusOK, string(data))
}

// Requests returns a copy of every request received so far.
func (s *TMDBStub) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestCount returns the number of requests received so far.
func (s *TMDBStub) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, or false when none was received.
func (s *TMDBStub) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *TMDBStub) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := r.URL.Path
	if len(path) >= 2 && path[:2] == "/3" {
		path = path[2:]
	}

	query := make(map[string]string)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:        r.Method,
		Path:          path,
		Query:         query,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	route, ok := s.routes[r.Method+" "+path]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
		return
	}
	if route.Handler != nil {
		route.Handler(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.Status)
	_, _ = w.Write([]byte(route.Body))
}
