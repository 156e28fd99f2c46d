package comment

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/comments"
	"net/http"
)

// maxCommentBody allows 500 four-byte graphemes plus JSON framing
const maxCommentBody = 8 << 10

// CreateHandler handles comment creation requests
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new handler for creating comments
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate adds a comment to a post
// POST /api/comments
//
// Request body: { "post_id": 1, "content": "..." }
// Response: { "comment": {...}, "comments_count": 4 }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	var req comments.CreateCommentRequest
	if err := handlers.DecodeJSON(w, r, maxCommentBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	req.AuthorID = userID

	result, err := h.service.AddComment(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, result)
}
