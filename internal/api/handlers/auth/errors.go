package auth

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/users"
	"Bulletin/internal/core/validation"
	"errors"
	"net/http"
)

// handleServiceError maps account errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "EmailTaken", "Email is already registered")
	case errors.Is(err, users.ErrNicknameTaken):
		handlers.WriteError(w, http.StatusConflict, "NicknameTaken", "Nickname is already in use")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case validation.IsValidationError(err):
		handlers.WriteValidationError(w, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
