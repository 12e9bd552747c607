package httpx

import (
	"net/http"
	"sync"
)

// Middleware wraps an http.Handler with extra behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h so that the first listed middleware is
// the outermost one.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Serialize returns a middleware admitting one request at a time.
// The kiosk's contract is a single cooperative control loop: handlers
// share one enrollment session slot and one sensor, so requests must
// not interleave. Routes sharing a semantic lock must share the same
// Serialize instance.
func Serialize() Middleware {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
