package routes

import (
	"Bulletin/internal/api/handlers/like"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/likes"

	"github.com/go-chi/chi/v5"
)

// RegisterLikeRoutes registers like toggling and like status
func RegisterLikeRoutes(r chi.Router, service likes.Service, sessionAuth *middleware.SessionAuth) {
	setHandler := like.NewSetLikeHandler(service)
	checkHandler := like.NewCheckLikeHandler(service)

	r.With(sessionAuth.RequireAuth).Post("/api/likes/{postId}", setHandler.HandleSetLike)

	// Anonymous callers get the count with is_liked=false
	r.With(sessionAuth.OptionalAuth).Get("/api/likes/check/{postId}", checkHandler.HandleCheckLike)
}
