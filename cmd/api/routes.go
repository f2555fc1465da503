package main

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/httpx"
)

// readinessCheck reports whether the storage backend can serve requests.
type readinessCheck func(ctx context.Context) error

func newRouter(bookHandler *book.HTTPHandler, ready readinessCheck) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /books", bookHandler.ListAll)
	router.HandleFunc("POST /books", bookHandler.Create)
	router.HandleFunc("DELETE /books/{bookId}", bookHandler.Delete)
	router.HandleFunc("PUT /books/{bookId}", bookHandler.Update)

	return router
}

// withMiddleware wraps the router. Outermost first:
// request id → access log → recovery → security headers → CORS → rate limit → body size.
func withMiddleware(cfg config, router http.Handler, limiter *httpx.RateLimitMiddleware) http.Handler {
	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
