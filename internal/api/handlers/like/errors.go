package like

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/posts"
	"Bulletin/internal/core/users"
	"Bulletin/internal/core/validation"
	"errors"
	"net/http"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, users.ErrUserNotFound):
		// Session outlived the account
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case validation.IsValidationError(err):
		handlers.WriteValidationError(w, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
