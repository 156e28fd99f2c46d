package routes

import (
	"Bulletin/internal/api/handlers/comment"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(r chi.Router, service comments.Service, sessionAuth *middleware.SessionAuth) {
	createHandler := comment.NewCreateHandler(service)
	listHandler := comment.NewListHandler(service)
	updateHandler := comment.NewUpdateHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	r.Get("/api/comments/{postId}", listHandler.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(sessionAuth.RequireAuth)
		r.Post("/api/comments", createHandler.HandleCreate)
		r.Put("/api/comments/{id}", updateHandler.HandleUpdate)
		r.Delete("/api/comments/{id}", deleteHandler.HandleDelete)
	})
}
