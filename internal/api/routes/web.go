package routes

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// RegisterWebRoutes registers the uploads directory, the health check, and the
// static frontend. frontendDir may be empty when the frontend is served elsewhere.
func RegisterWebRoutes(r chi.Router, db *sql.DB, uploadDir, frontendDir string) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Warn("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		uploads.ServeHTTP(w, r)
	})

	if frontendDir == "" {
		return
	}
	if _, err := os.Stat(frontendDir); err != nil {
		slog.Warn("frontend directory not found, skipping", "dir", frontendDir, "error", err)
		return
	}
	r.Handle("/*", http.FileServer(http.Dir(frontendDir)))
}
