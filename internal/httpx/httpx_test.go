package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestParsePageBypassed(t *testing.T) {
	page, err := ParsePage(url.Values{})
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if page.Enabled {
		t.Fatalf("expected pagination to be bypassed")
	}
}

func TestParsePageBoth(t *testing.T) {
	page, err := ParsePage(url.Values{"page": {"3"}, "limit": {"5"}})
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if !page.Enabled {
		t.Fatalf("expected pagination to be enabled")
	}
	if page.Number != 3 || page.Limit != 5 {
		t.Fatalf("unexpected page %d limit %d", page.Number, page.Limit)
	}
	if page.Skip() != 10 {
		t.Fatalf("expected skip 10, got %d", page.Skip())
	}
}

func TestParsePageDefaults(t *testing.T) {
	page, err := ParsePage(url.Values{"limit": {"20"}})
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if page.Number != 1 || page.Limit != 20 {
		t.Fatalf("unexpected page %d limit %d", page.Number, page.Limit)
	}

	page, err = ParsePage(url.Values{"page": {"4"}})
	if err != nil {
		t.Fatalf("ParsePage error: %v", err)
	}
	if page.Number != 4 || page.Limit != 10 {
		t.Fatalf("unexpected page %d limit %d", page.Number, page.Limit)
	}
	if page.Skip() != 30 {
		t.Fatalf("expected skip 30, got %d", page.Skip())
	}
}

func TestParsePageInvalid(t *testing.T) {
	bad := []url.Values{
		{"page": {"0"}},
		{"page": {"-2"}},
		{"page": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"x"}},
	}
	for _, values := range bad {
		if _, err := ParsePage(values); err == nil {
			t.Fatalf("expected error for %v", values)
		}
	}
}

func TestMethodGuard(t *testing.T) {
	called := false
	handler := Method(http.MethodPost, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/contact-submit", nil))
	if called {
		t.Fatalf("handler must not run on wrong method")
	}
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("expected Allow: POST, got %q", allow)
	}
	if !strings.Contains(rec.Body.String(), "method not allowed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/contact-submit", nil))
	if !called {
		t.Fatalf("handler should run on matching method")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
