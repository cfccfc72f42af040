package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestHelloHandler verifies the liveness endpoint returns the fixed greeting.
func TestHelloHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	rec := httptest.NewRecorder()

	HelloHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Hello, World!\n" {
		t.Errorf("unexpected body: %q", got)
	}
}

// TestRootHandlerAnonymous verifies the landing page renders for a request
// with no session.
func TestRootHandlerAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RootHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Welcome! Log in at /auth/login.\n" {
		t.Errorf("unexpected body: %q", got)
	}
}
