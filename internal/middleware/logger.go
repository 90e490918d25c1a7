package middleware

import (
	"log"
	"net/http"
	"time"
)

// statusWriter records the status code written by the handler so the
// logger can report it. The first WriteHeader wins, matching net/http
// semantics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// RequestLogger logs method, path, status, remote address and duration
// for each HTTP request.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// The websocket upgrade hijacks the connection; wrapping
			// the ResponseWriter would hide http.Hijacker from the
			// upgrader, so that path is logged without a status.
			if r.URL.Path == "/api/ws" {
				next.ServeHTTP(w, r)
				log.Printf("%s %s %s [%s]", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start))
				return
			}

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			log.Printf("%s %s %d %s [%s]", r.Method, r.URL.Path, status, r.RemoteAddr, time.Since(start))
		})
	}
}
