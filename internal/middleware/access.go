// internal/middleware/access.go
//
// Structured access-log middleware.
//
// Context
// -------
// Emits one INFO span per completed request with method, path, status,
// byte count, and latency.  When the requestinfo enrichment middleware
// has already run, the span also carries the parsed user-agent family,
// device class, bot flag, and geo hints, which keeps the daily JSON logs
// greppable without re-parsing UA strings downstream.
//
// Notes
// -----
// • The status recorder defaults to 200 because handlers that never call
//   WriteHeader implicitly send it.
// • Oxford commas, two spaces after periods.

package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Weburz/burzpage/internal/requestinfo"
)

// statusRecorder captures the response code and body size for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += n
	return n, err
}

// Access logs every request through the given sugared logger.
func Access(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if info := requestinfo.FromContext(r.Context()); info != nil {
				fields = append(fields,
					"browser", info.UA.Browser,
					"device", info.UA.Device,
					"bot", info.UA.IsBot,
					"country", info.Geo.CountryISO,
				)
			}
			log.Infow("request", fields...)
		})
	}
}
