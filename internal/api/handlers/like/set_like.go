package like

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/likes"
	"net/http"
)

// SetLikeHandler handles like and unlike requests
type SetLikeHandler struct {
	service likes.Service
}

// NewSetLikeHandler creates a new set like handler
func NewSetLikeHandler(service likes.Service) *SetLikeHandler {
	return &SetLikeHandler{service: service}
}

// HandleSetLike moves the caller's like on a post to the requested state
// POST /api/likes/{postId}
//
// Request body: { "is_liked": true | false }
// Response: { "post_id": 1, "like_count": 3, "is_liked": true }
func (h *SetLikeHandler) HandleSetLike(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := handlers.PathID(r, "postId")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	var req likes.SetLikeRequest
	if err := handlers.DecodeJSON(w, r, 1<<10, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	if req.Liked == nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "is_liked is required")
		return
	}

	status, err := h.service.SetLike(r.Context(), postID, userID, *req.Liked)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, status)
}
