package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests no mux pattern matched.
const unmatchedRoute = "unmatched"

type requestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that records request counts and latencies by
// route pattern. It must wrap the *http.ServeMux directly: the mux sets
// r.Pattern on the request it is handed, and the pattern is read from that
// same request once the mux returns.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			obs.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}
