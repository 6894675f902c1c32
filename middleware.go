package beacon

import "net/http"

// Middleware returns a router-agnostic net/http middleware that tracks one
// "http.request" envelope per request with method, path, status and
// duration. The envelope is queued after the handler returns, so slow
// telemetry never sits between the client and the response.
func (t *Tracker) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := t.now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			t.Track(Envelope{
				Name: "http.request",
				Time: start,
				Attrs: map[string]any{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      rec.status,
					"duration_ms": t.now().Sub(start).Milliseconds(),
				},
			})
		})
	}
}

// statusRecorder captures the response status code for the envelope.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach Flusher and Hijacker on the
// underlying writer, so streaming and websocket handlers keep working
// behind the middleware.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
