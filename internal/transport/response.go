package transport

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error envelope: message carries the category
// label, error the human-readable detail.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message, detail string) {
	if detail == "" {
		detail = message
	}
	WriteJSON(w, status, ErrorResponse{
		Message: message,
		Error:   detail,
	})
}
