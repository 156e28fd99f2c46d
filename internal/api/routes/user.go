package routes

import (
	"Bulletin/internal/api/handlers/user"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers the signed-in user's profile endpoints
func RegisterUserRoutes(r chi.Router, service users.UserService, sessionAuth *middleware.SessionAuth) {
	h := user.NewProfileHandler(service)

	r.Route("/api/user", func(r chi.Router) {
		r.Use(sessionAuth.RequireAuth)
		r.Get("/profile", h.HandleGetProfile)
		r.Post("/update-nickname", h.HandleUpdateNickname)
		r.Post("/change-password", h.HandleChangePassword)
		r.Post("/update-profile-image", h.HandleUpdateProfileImage)
	})
}
