package auth

import (
	"Bulletin/internal/api/handlers"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/users"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionHandler signs users in and out
type SessionHandler struct {
	service users.UserService
	auth    *middleware.SessionAuth
}

// NewSessionHandler creates a new login/logout handler
func NewSessionHandler(service users.UserService, auth *middleware.SessionAuth) *SessionHandler {
	return &SessionHandler{service: service, auth: auth}
}

// HandleLogin checks credentials and sets the session cookie
// POST /api/auth/login
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handlers.DecodeJSON(w, r, maxAuthBody, &req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.auth.Login(w, r, user.ID); err != nil {
		handlers.WriteInternalError(w, r, err)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// HandleLogout clears the session cookie. Logging out without a session is not an error.
// POST /api/auth/logout
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(w, r); err != nil {
		handlers.WriteInternalError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// HandleWithdraw deletes the caller's account and ends the session
// POST /api/auth/withdraw
func (h *SessionHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Withdraw(r.Context(), userID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.auth.Logout(w, r); err != nil {
		handlers.WriteInternalError(w, r, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"withdrawn": true})
}
