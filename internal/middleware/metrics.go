package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ObserveFunc receives one finished request. route is the chi route pattern
// ("/workouts/{id}"), so ids never become label values.
type ObserveFunc func(method, route, status string, d time.Duration)

// NewMetrics returns a middleware that reports every request to observe.
// Requests that matched no route are reported with route "unmatched".
func NewMetrics(observe ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			observe(r.Method, routePattern(r), strconv.Itoa(status), time.Since(start))
		})
	}
}
