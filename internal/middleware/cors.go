// internal/middleware/cors.go
//
// Cross-origin request middleware.
//
// Context
// -------
// The development variant of the configuration record carries an ordered
// `origins` allow-list (staging and production carry none, so the wrapper
// becomes a no-op there).  Only origins present in the list are echoed
// back; everything else is served without CORS headers, which browsers
// treat as a denial.
//
// Preflight OPTIONS requests are answered directly with 204 so the real
// handlers never see them.
//
// Notes
// -----
// • `Vary: Origin` is always set when an allow-list exists, so caches
//   never serve one origin's response to another.
// • Oxford commas, two spaces after periods.

package middleware

import "net/http"

// CORS returns a wrapper that allows cross-origin requests from the given
// origins.  An empty allow-list returns the handler unchanged.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		if len(allowed) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && allowed[origin] {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
				h.Set("Access-Control-Max-Age", "300")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
