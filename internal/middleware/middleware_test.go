package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	if !rl.Allow("1.2.3.4:/contact-submit") || !rl.Allow("1.2.3.4:/contact-submit") {
		t.Fatalf("first two requests must pass")
	}
	if rl.Allow("1.2.3.4:/contact-submit") {
		t.Fatalf("third request within the window must be rejected")
	}
	if !rl.Allow("5.6.7.8:/contact-submit") {
		t.Fatalf("other clients must not be affected")
	}
}

func TestRateLimiterSweepsExpiredBuckets(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	expired := time.Now().Add(-time.Minute)
	rl.buckets["old-a"] = &bucket{count: 5, reset: expired}
	rl.buckets["old-b"] = &bucket{count: 1, reset: expired}
	rl.nextSweep = expired

	if !rl.Allow("fresh") {
		t.Fatalf("fresh client must pass")
	}
	if len(rl.buckets) != 1 {
		t.Fatalf("expired buckets must be swept, got %d entries", len(rl.buckets))
	}
	if _, ok := rl.buckets["fresh"]; !ok {
		t.Fatalf("fresh bucket missing after sweep")
	}
}

func TestRateLimiterMiddlewareBody(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/contact-submit", nil)
	req.RemoteAddr = "1.2.3.4:5678"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rate limit exceeded") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequestIDGenerated(t *testing.T) {
	var got string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/list", nil))

	if got == "" {
		t.Fatalf("expected a generated request id in context")
	}
	if rec.Header().Get(HeaderRequestID) != got {
		t.Fatalf("response header %q does not match context id %q", rec.Header().Get(HeaderRequestID), got)
	}
}

func TestRequestIDReusesInbound(t *testing.T) {
	var got string
	handler := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/reviews/list", nil)
	req.Header.Set(HeaderRequestID, "frontend-abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got != "frontend-abc-123" {
		t.Fatalf("inbound id must be reused, got %q", got)
	}

	// Oversized ids are replaced rather than trusted.
	req = httptest.NewRequest(http.MethodGet, "/reviews/list", nil)
	req.Header.Set(HeaderRequestID, strings.Repeat("x", 65))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got == "" || len(got) > 64 {
		t.Fatalf("oversized inbound id must be replaced, got %q", got)
	}
	if strings.HasPrefix(got, "xxx") {
		t.Fatalf("oversized inbound id was trusted")
	}
}
