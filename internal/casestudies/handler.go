package casestudies

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

const publicCacheKey = "casestudies:published"

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

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("case study create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if missing := req.MissingRequired(); len(missing) > 0 {
		log.Warn("case study create: missing fields", slog.String("fields", strings.Join(missing, ",")))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("case study create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("case study create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to store case study")
		return
	}

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("case study create: ok", slog.String("case_study_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, err := httpx.ParsePage(r.URL.Query())
	if err != nil {
		log.Warn("case studies list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	filter := ListFilter{
		IncludeUnpublished: r.URL.Query().Get("all") == "true",
	}

	cacheable := !page.Enabled && !filter.IncludeUnpublished
	if cacheable && h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), publicCacheKey); err == nil && ok {
			log.Info("case studies list: cache hit")
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
		log.Error("case studies list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to list case studies")
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

	log.Info("case studies list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("case study update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("case study update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "invalid json body")
		return
	}

	if missing := req.MissingRequired(); len(missing) > 0 {
		log.Warn("case study update: missing fields", slog.String("fields", strings.Join(missing, ",")))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("case study update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationMessages(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("case study update: not found", slog.String("case_study_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "case study not found")
			return
		}
		log.Error("case study update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to update case study")
		return
	}

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("case study update: ok", slog.String("case_study_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := httpx.QueryID(r.URL.Query())
	if id == "" {
		log.Warn("case study delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("case study delete: not found", slog.String("case_study_id", id))
			transport.WriteError(w, http.StatusNotFound, "not found", "case study not found")
			return
		}
		log.Error("case study delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", "failed to delete case study")
		return
	}

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("case study delete: ok", slog.String("case_study_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Seed imports the fixed legacy dataset. The operation is best effort:
// per-entry failures land in the response instead of aborting the batch.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result := h.service.SeedLegacy(ctx, LegacyDataset)

	if h.cache != nil {
		_ = h.cache.Delete(r.Context(), publicCacheKey)
	}

	log.Info("case study seed: done",
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)),
	)
	transport.WriteJSON(w, http.StatusOK, result)
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
