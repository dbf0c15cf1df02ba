package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RequestMonitor records visitor requests
type RequestMonitor interface {
	Monitor(r *http.Request, route string)
}

// MonitorRequests records every request under the logical name of the
// matched chi route before handing it on. Use it on route groups, where the
// pattern is already known.
func MonitorRequests(m RequestMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				pattern = rctx.RoutePattern()
			}
			m.Monitor(r, RouteName(pattern))
			next.ServeHTTP(w, r)
		})
	}
}

// RouteName maps a route pattern to its endpoint name: the first static
// path segment, or "landing" for the root.
func RouteName(pattern string) string {
	for _, segment := range strings.Split(strings.Trim(pattern, "/"), "/") {
		if segment == "" || strings.HasPrefix(segment, "{") || segment == "*" {
			continue
		}
		return segment
	}
	return "landing"
}
