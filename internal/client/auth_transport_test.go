package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuthTransport_Headers(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newAuthTransport(http.DefaultTransport, func() string { return "tok" }, "ReelRate/test")}

	resp, err := httpClient.Post(server.URL, "", strings.NewReader(`{"value":8}`))
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	resp.Body.Close()

	if got.Get("Authorization") != "Bearer tok" {
		t.Errorf("Expected bearer header, got %q", got.Get("Authorization"))
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Expected Accept application/json, got %q", got.Get("Accept"))
	}
	if got.Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", got.Get("Content-Type"))
	}
	if got.Get("User-Agent") != "ReelRate/test" {
		t.Errorf("Expected User-Agent ReelRate/test, got %q", got.Get("User-Agent"))
	}
}

func TestAuthTransport_EmptyTokenSendsNoHeader(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	httpClient := &http.Client{Transport: newAuthTransport(http.DefaultTransport, func() string { return "" }, "")}
	resp, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	resp.Body.Close()

	if auth != "" {
		t.Errorf("Expected no Authorization header, got %q", auth)
	}
}
