package httpapi

import (
	"net/http"
	"strings"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

var authPaths = map[string]bool{
	"/login":           true,
	"/signup":          true,
	"/forgot-password": true,
}

// RouteGuard redirects page navigation based on cookie presence only:
// protected pages bounce to the login page without a cookie, auth
// pages bounce to the dashboard with one. It deliberately does not
// validate the cookie against the user file; that is navigation UX,
// not authorization. A forged cookie gets past the guard and is then
// rejected by the session middleware inside every API handler.
func RouteGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		hasSession := err == nil && cookie.Value != ""

		if strings.HasPrefix(r.URL.Path, dashboardPath) && !hasSession {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		if authPaths[r.URL.Path] && hasSession {
			http.Redirect(w, r, dashboardPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
