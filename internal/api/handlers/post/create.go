package post

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/posts"
	"net/http"
)

// CreateHandler handles post creation
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create post handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a post from a multipart form
// POST /api/posts
//
// Form fields: title, content, image (optional file)
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := handlers.ParseMultipart(w, r); err != nil {
		handleServiceError(w, r, err)
		return
	}

	upload, err := handlers.FormImage(r, "image")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	post, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		AuthorID: userID,
		Image:    upload,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, post)
}
