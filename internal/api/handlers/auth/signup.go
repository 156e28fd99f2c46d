package auth

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/core/users"
	"net/http"
)

const maxAuthBody = 4 << 10

// SignupHandler creates accounts
type SignupHandler struct {
	service users.UserService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service users.UserService) *SignupHandler {
	return &SignupHandler{service: service}
}

// HandleSignup registers a new account. It does not sign the caller in.
// POST /api/auth/signup
//
// Request body: { "email": "...", "password": "...", "nickname": "..." }
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req users.SignupRequest
	if err := handlers.DecodeJSON(w, r, maxAuthBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user)
}
