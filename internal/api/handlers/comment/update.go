package comment

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/comments"
	"net/http"
)

// UpdateHandler handles comment edits
type UpdateHandler struct {
	service comments.Service
}

// NewUpdateHandler creates a new update comment handler
func NewUpdateHandler(service comments.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate replaces the content of the caller's comment
// PUT /api/comments/{id}
//
// Request body: { "content": "..." }
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req comments.UpdateCommentRequest
	if err := handlers.DecodeJSON(w, r, maxCommentBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	req.ID = id
	req.RequesterID = userID

	comment, err := h.service.UpdateComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}
