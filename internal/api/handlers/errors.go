package handlers

import (
	"Bulletin/internal/core/validation"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: errorType, Message: message})
}

// WriteJSON encodes v as the response body
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteValidationError writes a 400 naming the rejected field
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validation.Error
	if errors.As(err, &valErr) {
		WriteError(w, http.StatusBadRequest, "InvalidRequest", valErr.Field+": "+valErr.Message)
		return
	}
	WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
}

// WriteInternalError logs err and writes a generic 500
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
}
