package post

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/posts"
	"net/http"
	"strconv"
)

// UpdateHandler handles post edits
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update post handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate applies a partial update from a multipart form.
// Absent fields are left unchanged.
// PUT /api/posts/{id}
//
// Form fields: title, content, image (file), remove_image ("true")
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

	if err := handlers.ParseMultipart(w, r); err != nil {
		handleServiceError(w, r, err)
		return
	}

	upload, err := handlers.FormImage(r, "image")
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	req := posts.UpdatePostRequest{
		ID:          id,
		RequesterID: userID,
		Image:       upload,
	}
	if values, ok := r.MultipartForm.Value["title"]; ok && len(values) > 0 {
		req.Title = &values[0]
	}
	if values, ok := r.MultipartForm.Value["content"]; ok && len(values) > 0 {
		req.Content = &values[0]
	}
	req.RemoveImage, _ = strconv.ParseBool(r.FormValue("remove_image"))

	post, err := h.service.UpdatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
