package routes

import (
	"Bulletin/internal/api/handlers/auth"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers signup, login, logout and withdraw
func RegisterAuthRoutes(r chi.Router, userService users.UserService, sessionAuth *middleware.SessionAuth) {
	signupHandler := auth.NewSignupHandler(userService)
	sessionHandler := auth.NewSessionHandler(userService, sessionAuth)

	r.Post("/api/auth/signup", signupHandler.HandleSignup)
	r.Post("/api/auth/login", sessionHandler.HandleLogin)
	r.Post("/api/auth/logout", sessionHandler.HandleLogout)
	r.With(sessionAuth.RequireAuth).Post("/api/auth/withdraw", sessionHandler.HandleWithdraw)
}
