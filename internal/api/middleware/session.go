package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// Context keys for request-scoped values
type contextKey string

const (
	// UserIDKey holds the signed-in user's id
	UserIDKey contextKey = "user_id"
)

const (
	// SessionName is the cookie that carries the session
	SessionName = "bulletin_session"

	sessionUserIDKey = "user_id"

	// DefaultSessionMaxAge is one day, in seconds
	DefaultSessionMaxAge = 24 * 60 * 60
)

// NewCookieStore builds a signed cookie store for the session
func NewCookieStore(secret []byte, secure bool, maxAge int) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SessionAuth reads and writes the signed-in user id in a session cookie
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates session middleware backed by store
func NewSessionAuth(store sessions.Store) *SessionAuth {
	return &SessionAuth{store: store}
}

// Login records userID in the session cookie
func (a *SessionAuth) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	// A decode error means an expired or tampered cookie; Get still returns
	// a fresh session that can be saved over it.
	session, _ := a.store.Get(r, SessionName)
	session.Values[sessionUserIDKey] = userID
	return session.Save(r, w)
}

// Logout expires the session cookie
func (a *SessionAuth) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := a.store.Get(r, SessionName)
	delete(session.Values, sessionUserIDKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

func (a *SessionAuth) sessionUserID(r *http.Request) int64 {
	session, err := a.store.Get(r, SessionName)
	if err != nil {
		return 0
	}
	id, ok := session.Values[sessionUserIDKey].(int64)
	if !ok || id <= 0 {
		return 0
	}
	return id
}

// RequireAuth rejects requests without a valid session with 401
func (a *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := a.sessionUserID(r)
		if userID == 0 {
			writeAuthError(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(SetUserID(r.Context(), userID)))
	})
}

// OptionalAuth loads the user id when a valid session exists and passes
// anonymous requests through unchanged
func (a *SessionAuth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := a.sessionUserID(r); userID != 0 {
			r = r.WithContext(SetUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the signed-in user id, or 0 for anonymous requests
func GetUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(UserIDKey).(int64)
	return id
}

// SetUserID injects a user id into ctx. Used by the session middleware and tests.
func SetUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		slog.Error("failed to encode auth error", "error", err)
	}
}
