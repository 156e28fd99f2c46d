package post

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/images"
	"Bulletin/internal/core/posts"
	"Bulletin/internal/core/validation"
	"errors"
	"net/http"
)

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case posts.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You can only modify your own posts")
	case errors.Is(err, posts.ErrAuthorNotFound):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case errors.Is(err, images.ErrUnsupportedFormat):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "image: unsupported or corrupt image file")
	case validation.IsValidationError(err):
		handlers.WriteValidationError(w, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
