package middleware

import (
	"net/http"
	"time"
)

// unmatchedRoute labels requests the router did not match, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPRecorder records one served request.
type HTTPRecorder interface {
	RecordHTTPRequest(route, method string, status int, d time.Duration)
}

// Metrics records count and latency per route pattern. It must wrap the
// ServeMux so that r.Pattern is populated once the mux has routed.
func Metrics(recorder HTTPRecorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		recorder.RecordHTTPRequest(route, r.Method, wrapped.status, time.Since(start))
	})
}
