package httpapi

import (
	"context"
	"net/http"

	"studentportal-backend-go/internal/models"
	"studentportal-backend-go/internal/store"
)

// SessionCookie carries the session token: the id of the signed-in
// user. Validity means exactly "a user record with this id exists";
// there is no server-side session state to expire or revoke.
const SessionCookie = "session_id"

type contextKey string

const ctxUser contextKey = "user"

// WithSession resolves the session cookie to a user record once per
// request and passes it down through the context. Resolution is a
// linear scan of the user file, O(n) per request with no cache, which
// the flat-file scale tolerates. Handlers behind this middleware never
// re-check the cookie themselves.
func WithSession(users *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				WriteError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			user, err := users.FindByID(cookie.Value)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Server error")
				return
			}
			if user == nil {
				WriteError(w, http.StatusNotFound, "User not found")
				return
			}
			ctx := context.WithValue(r.Context(), ctxUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the record WithSession resolved, or nil outside
// the middleware.
func CurrentUser(r *http.Request) *models.User {
	if user, ok := r.Context().Value(ctxUser).(*models.User); ok {
		return user
	}
	return nil
}

func (s *Server) setSessionCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(s.Config.SessionTTLSeconds),
		HttpOnly: true,
		Secure:   s.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
