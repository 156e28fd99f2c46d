package comment

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/comments"
	"Bulletin/internal/core/posts"
	"Bulletin/internal/core/users"
	"Bulletin/internal/core/validation"
	"errors"
	"net/http"
)

// handleServiceError maps comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case errors.Is(err, comments.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You can only modify your own comments")
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case validation.IsValidationError(err):
		handlers.WriteValidationError(w, err)
	default:
		handlers.WriteInternalError(w, r, err)
	}
}
