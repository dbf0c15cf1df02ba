package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/tracker/config"
	"github.com/blogem/tracker/userctx"
)

// Session keys shared with the controllers
const (
	SessionUsernameKey      = "username"
	SessionRedirectAfterKey = "redirect_after_login"
)

// SessionUsername returns the logged-in username or ""
func SessionUsername(r *http.Request) string {
	sess := session.GetSession(r)
	if sess == nil {
		return ""
	}
	username, _ := sess.Get(SessionUsernameKey).(string)
	return username
}

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to the landing page and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := SessionUsername(r)
		if username == "" {
			session.GetSession(r).Set(SessionRedirectAfterKey, r.URL.Path)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		// Add username to request context for use in handlers and repositories
		ctx := userctx.SetUsername(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects logged-in users that are not administrators. It must
// run after RequireAuth.
func RequireAdmin(auth config.AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.IsAdmin(SessionUsername(r)) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
