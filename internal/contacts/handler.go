package contacts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"codecrest-backend/internal/httpx"
	"codecrest-backend/internal/middleware"
	"codecrest-backend/internal/transport"
	"codecrest-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact submit: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if missing := req.MissingRequired(); len(missing) > 0 {
		log.Warn("contact submit: missing fields", slog.String("fields", strings.Join(missing, ",")))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact submit: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("contact submit: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to store message")
		return
	}

	// The write is the durable side effect; the notification is best effort
	// and must not change the response.
	go func(stored Contact) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.NotifyReceived(notifyCtx, stored); err != nil {
			h.log.Warn("contact submit: notification failed",
				slog.String("contact_id", stored.ID),
				slog.String("error", err.Error()),
			)
		}
	}(msg)

	log.Info("contact submit: stored", slog.String("contact_id", msg.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"id": msg.ID})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, err := httpx.ParsePage(r.URL.Query())
	if err != nil {
		log.Warn("contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	filter := ListFilter{
		Email: strings.TrimSpace(r.URL.Query().Get("email")),
	}

	var limit, offset int64
	if page.Enabled {
		limit = page.Limit
		offset = page.Skip()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, filter, limit, offset)
	if err != nil {
		log.Error("contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to list messages")
		return
	}

	log.Info("contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data":  NewViews(items),
		"count": total,
	})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("contact mark read: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.service.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("contact mark read: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "contact not found")
			return
		}
		log.Error("contact mark read: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to update message")
		return
	}

	log.Info("contact mark read: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, NewView(updated))
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("contact status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	var req StatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", "status must be one of: Received, Progress, Done")
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("contact status: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "contact not found")
			return
		}
		log.Error("contact status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to update message")
		return
	}

	log.Info("contact status: ok", slog.String("contact_id", id), slog.String("status", updated.Status))
	transport.WriteJSON(w, http.StatusOK, NewView(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("contact delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("contact delete: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "contact not found")
			return
		}
		log.Error("contact delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to delete message")
		return
	}

	log.Info("contact delete: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
