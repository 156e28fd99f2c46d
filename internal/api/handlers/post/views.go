package post

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/posts"
	"net/http"
)

// ViewsHandler serves the per-post view counter
type ViewsHandler struct {
	service posts.Service
}

// NewViewsHandler creates a new views handler
func NewViewsHandler(service posts.Service) *ViewsHandler {
	return &ViewsHandler{service: service}
}

// HandleIncrement records one view
// POST /api/views/{id}
//
// Response: { "id": 1, "views": 42 }
func (h *ViewsHandler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	views, err := h.service.IncrementViews(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]int64{"id": id, "views": views})
}

// HandleGet reads the view count
// GET /api/views/{id}
func (h *ViewsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	views, err := h.service.GetViews(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]int64{"id": id, "views": views})
}
