package like

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/likes"
	"net/http"
)

// CheckLikeHandler reports a post's like count and the caller's like state
type CheckLikeHandler struct {
	service likes.Service
}

// NewCheckLikeHandler creates a new check like handler
func NewCheckLikeHandler(service likes.Service) *CheckLikeHandler {
	return &CheckLikeHandler{service: service}
}

// HandleCheckLike returns the like status. Anonymous callers get is_liked=false.
// GET /api/likes/check/{postId}
func (h *CheckLikeHandler) HandleCheckLike(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathID(r, "postId")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	status, err := h.service.GetLikeStatus(r.Context(), postID, middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, status)
}
