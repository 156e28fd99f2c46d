package post

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/posts"
	"net/http"
)

// GetHandler serves post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get post handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleList returns one page of posts newest first
// GET /api/posts?page=1&limit=10
func (h *GetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := handlers.QueryInt(r, "page", 1)
	limit := handlers.QueryInt(r, "limit", posts.DefaultPageSize)

	result, err := h.service.ListPosts(r.Context(), page, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleGet returns a single post
// GET /api/posts/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
