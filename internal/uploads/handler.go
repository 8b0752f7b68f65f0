package uploads

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"codecrest-backend/internal/middleware"
	"codecrest-backend/internal/transport"
)

// MaxUploadBytes caps a single image upload at 10MB.
const MaxUploadBytes = 10 << 20

type Handler struct {
	client *HostClient
	log    *slog.Logger
}

func NewHandler(client *HostClient, log *slog.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		log.Warn("image upload: bad multipart body", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "file must be a multipart upload of at most 10MB")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Warn("image upload: missing image field")
		transport.WriteError(w, http.StatusBadRequest, "validation error", "missing file field \"image\"")
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		log.Warn("image upload: file too large", slog.Int64("size", header.Size))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "file must be at most 10MB")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("image upload: read error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", "failed to read file")
		return
	}

	if !isImage(header.Header.Get("Content-Type"), data) {
		log.Warn("image upload: not an image", slog.String("content_type", header.Header.Get("Content-Type")))
		transport.WriteError(w, http.StatusBadRequest, "validation error", "file must be an image")
		return
	}

	if h.client == nil {
		log.Error("image upload: host not configured")
		transport.WriteError(w, http.StatusInternalServerError, "upload error", "image hosting is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	// Unlike the contact email this relay is the whole point of the request,
	// so a host failure fails the request and the client retries.
	url, err := h.client.Upload(ctx, data)
	if err != nil {
		log.Error("image upload: host error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload error", "image host rejected the upload")
		return
	}

	log.Info("image upload: ok", slog.Int("bytes", len(data)))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}

func isImage(declared string, data []byte) bool {
	if strings.HasPrefix(declared, "image/") {
		return true
	}
	return strings.HasPrefix(http.DetectContentType(data), "image/")
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
