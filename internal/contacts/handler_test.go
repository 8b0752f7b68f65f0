package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codecrest-backend/internal/transport"
	"codecrest-backend/internal/validation"
)

type fakeNotifier struct {
	err    error
	called chan Contact
}

func (f *fakeNotifier) SendContactNotification(ctx context.Context, msg Contact) (string, error) {
	if f.called != nil {
		f.called <- msg
	}
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func newTestHandler(repo *fakeRepo, notifier Notifier) *Handler {
	svc := NewService(repo, time.UTC, notifier)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, validation.New(), logger)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var resp transport.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestSubmitStoresMessage(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{called: make(chan Contact, 1)}
	h := newTestHandler(repo, notifier)

	rec := postJSON(t, h.Submit, "/contact-submit", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp["id"] == "" {
		t.Fatalf("expected id in response")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored item, got %d", len(repo.items))
	}

	select {
	case sent := <-notifier.called:
		if sent.Email != "jane@example.com" {
			t.Fatalf("unexpected notified email %q", sent.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notifier was not invoked")
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp down"), called: make(chan Contact, 1)}
	h := newTestHandler(repo, notifier)

	rec := postJSON(t, h.Submit, "/contact-submit", `{"name":"Jane","email":"jane@example.com","message":"Hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("notification failure must not change the response, got %d", rec.Code)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected stored item despite notifier failure")
	}
	<-notifier.called
}

func TestSubmitMissingFields(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	rec := postJSON(t, h.Submit, "/contact-submit", `{"phone":"123"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Message != "validation error" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Error != "missing required fields: name, email, message" {
		t.Fatalf("unexpected detail %q", resp.Error)
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	rec := postJSON(t, h.Submit, "/contact-submit", `{"name":"Jane","email":"not-an-email","message":"Hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Error, "email") {
		t.Fatalf("expected email in detail, got %q", resp.Error)
	}
}

func TestSubmitInvalidJSON(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	rec := postJSON(t, h.Submit, "/contact-submit", `{"name":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListResponseShape(t *testing.T) {
	repo := &fakeRepo{items: []Contact{
		{ID: "c1", Name: "Jane", Email: "jane@example.com", CreatedAt: time.Now()},
	}}
	h := newTestHandler(repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/contacts/list", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []View `json:"data"`
		Count int64  `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Count != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected 1/1, got %d/%d", len(resp.Data), resp.Count)
	}
	if resp.Data[0].ID != "c1" {
		t.Fatalf("unexpected id %q", resp.Data[0].ID)
	}
}

func TestListRejectsBadPage(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/contacts/list?page=0", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMarkReadMissingID(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/contacts/mark-read", nil)
	rec := httptest.NewRecorder()
	h.MarkRead(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateStatusUnknownValue(t *testing.T) {
	repo := &fakeRepo{items: []Contact{{ID: "c1"}}}
	h := newTestHandler(repo, nil)

	rec := postJSON(t, h.UpdateStatus, "/contacts/update-status?id=c1", `{"status":"Archived"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if !strings.Contains(resp.Error, "status") {
		t.Fatalf("unexpected detail %q", resp.Error)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	h := newTestHandler(&fakeRepo{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/contacts/delete?id=missing", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
