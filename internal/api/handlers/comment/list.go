package comment

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/comments"
	"net/http"
)

// ListHandler returns the comments on a post
type ListHandler struct {
	service comments.Service
}

// NewListHandler creates a new list comments handler
func NewListHandler(service comments.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns a post's comments oldest first
// GET /api/comments/{postId}
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, err := handlers.PathID(r, "postId")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	list, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"comments": list,
	})
}
