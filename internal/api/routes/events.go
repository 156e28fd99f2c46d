package routes

import (
	"Bulletin/internal/api/handlers/sse"
	"Bulletin/internal/core/events"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterEventRoutes registers the server-sent event stream.
// The stream must not sit behind the request timeout middleware.
func RegisterEventRoutes(r chi.Router, subscriber events.Subscriber, heartbeat time.Duration) {
	r.Get("/api/events", sse.NewStreamHandler(subscriber, heartbeat).HandleStream)
}
