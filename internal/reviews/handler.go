package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"codecrest-backend/internal/cache"
	"codecrest-backend/internal/httpx"
	"codecrest-backend/internal/middleware"
	"codecrest-backend/internal/transport"
	"codecrest-backend/internal/validation"
)

const publicCacheKey = "reviews:approved"

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, store cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    store,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("review create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if missing := req.MissingRequired(); len(missing) > 0 {
		log.Warn("review create: missing fields", slog.String("fields", strings.Join(missing, ",")))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("review create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("review create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to store review")
		return
	}

	log.Info("review create: ok", slog.String("review_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, err := httpx.ParsePage(r.URL.Query())
	if err != nil {
		log.Warn("reviews list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	filter := ListFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	// The unpaginated approved listing is what the public site requests on
	// every page view, so it is the one shape worth caching.
	cacheable := !page.Enabled && (filter.Status == "" || filter.Status == StatusApproved)
	if cacheable && h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), publicCacheKey); err == nil && ok {
			log.Info("reviews list: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
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
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", "status must be one of: pending, approved, rejected, all")
			return
		}
		log.Error("reviews list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to list reviews")
		return
	}

	response := map[string]interface{}{
		"data":  items,
		"count": total,
	}

	if cacheable && h.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			_ = h.cache.Set(r.Context(), publicCacheKey, payload, h.cacheTTL)
		}
	}

	log.Info("reviews list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("review status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	var req StatusUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("review status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("review status: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			transport.WriteError(w, http.StatusBadRequest, "validation error", "status must be one of: pending, approved, rejected")
			return
		}
		if errors.Is(err, ErrNotFound) {
			log.Warn("review status: not found", slog.String("review_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "review not found")
			return
		}
		log.Error("review status: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to update review")
		return
	}

	// Moderation changes what the public listing shows, so the cached copy
	// is stale the moment this commits.
	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("review status: ok", slog.String("review_id", id), slog.String("status", item.Status))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("review delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("review delete: not found", slog.String("review_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "review not found")
			return
		}
		log.Error("review delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to delete review")
		return
	}

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("review delete: ok", slog.String("review_id", id))
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
