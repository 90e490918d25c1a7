package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blazeos/blaze-bridge/internal/response"
)

// Recover turns handler panics into 500 responses instead of killing
// the connection. The gateway treats dropped connections as delivery
// failures and retries, so a panic must still produce a response.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Printf("[HTTP] Panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					response.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
