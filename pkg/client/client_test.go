package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/querykit/querykit/pkg/qs"
)

// TestNewRequestURL tests URL composition from base, path, and params.
func TestNewRequestURL(t *testing.T) {
	c, err := New("https://api.example.com/v1")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	req, err := c.NewRequest(context.Background(), http.MethodGet, "/orders", qs.Params{
		"page":   qs.Int(2),
		"status": qs.Multi(qs.String("open"), qs.String("stale")),
	})
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}

	want := "https://api.example.com/v1/orders?page=2&status=open&status=stale"
	if got := req.URL.String(); got != want {
		t.Errorf("URL: got %q, want %q", got, want)
	}
}

// TestGet tests a round trip against a test server, including headers.
func TestGet(t *testing.T) {
	var gotQuery, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotHeader = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithHeader("Authorization", "Bearer tok"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	resp, err := c.Get(context.Background(), "/orders", qs.Params{"name": qs.String("foo bar")})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	resp.Body.Close()

	if gotQuery != "name=foo+bar" {
		t.Errorf("query: got %q, want %q", gotQuery, "name=foo+bar")
	}
	if gotHeader != "Bearer tok" {
		t.Errorf("header: got %q, want %q", gotHeader, "Bearer tok")
	}
}

// TestNewBadBaseURL tests base URL validation.
func TestNewBadBaseURL(t *testing.T) {
	if _, err := New("://nope"); err == nil {
		t.Error("New accepted an invalid base URL")
	}
}
