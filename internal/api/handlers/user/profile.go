package user

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/users"
	"net/http"
)

const maxProfileBody = 4 << 10

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

// ProfileHandler serves the signed-in user's own account
type ProfileHandler struct {
	service users.UserService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleGetProfile returns the caller's profile
// GET /api/user/profile
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, profile)
}

// HandleUpdateNickname renames the caller
// POST /api/user/update-nickname
//
// Request body: { "nickname": "..." }
func (h *ProfileHandler) HandleUpdateNickname(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req nicknameRequest
	if err := handlers.DecodeJSON(w, r, maxProfileBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	profile, err := h.service.UpdateNickname(r.Context(), userID, req.Nickname)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, profile)
}

// HandleChangePassword replaces the caller's password after checking the current one
// POST /api/user/change-password
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req users.ChangePasswordRequest
	if err := handlers.DecodeJSON(w, r, maxProfileBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, req); err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// HandleUpdateProfileImage stores a new profile picture
// POST /api/user/update-profile-image
//
// Form fields: image (required file)
func (h *ProfileHandler) HandleUpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
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
	profile, err := h.service.UpdateProfileImage(r.Context(), userID, upload)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, profile)
}

func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return 0, false
	}
	return userID, true
}
