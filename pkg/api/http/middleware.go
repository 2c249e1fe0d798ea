package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// loggingMiddleware shims in a handler middleware that logs requests.
func loggingMiddleware(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug().
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Int64("length", r.ContentLength).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}
