package comment

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/comments"
	"net/http"
)

// DeleteHandler handles comment deletion
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new delete comment handler
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes the caller's comment
// DELETE /api/comments/{id}
//
// Response: { "post_id": 1, "comments_count": 3 }
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	result, err := h.service.DeleteComment(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}
