package routes

import (
	"Bulletin/internal/api/handlers/post"
	"Bulletin/internal/api/middleware"
	"Bulletin/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post CRUD and view counter endpoints
func RegisterPostRoutes(r chi.Router, service posts.Service, sessionAuth *middleware.SessionAuth) {
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	viewsHandler := post.NewViewsHandler(service)

	r.Get("/api/posts", getHandler.HandleList)
	r.Get("/api/posts/{id}", getHandler.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(sessionAuth.RequireAuth)
		r.Post("/api/posts", createHandler.HandleCreate)
		r.Put("/api/posts/{id}", updateHandler.HandleUpdate)
		r.Delete("/api/posts/{id}", deleteHandler.HandleDelete)
	})

	// Views are anonymous; every request counts
	r.Post("/api/views/{id}", viewsHandler.HandleIncrement)
	r.Get("/api/views/{id}", viewsHandler.HandleGet)
}
