package user

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/images"
	"Bulletin/internal/core/users"
	"Bulletin/internal/core/validation"
	"errors"
	"net/http"
)

// handleServiceError maps profile errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, users.ErrNicknameTaken):
		handlers.WriteError(w, http.StatusConflict, "NicknameTaken", "Nickname is already in use")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "current_password: does not match")
	case errors.Is(err, images.ErrUnsupportedFormat):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "image: unsupported or corrupt image file")
	case validation.IsValidationError(err):
		handlers.WriteValidationError(w, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
