package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires every endpoint with the middleware chain:
// request id -> recoverer -> logging -> security headers -> CORS.
func NewRouter(api *API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggingMiddleware)
	r.Use(SecurityHeadersMiddleware)
	// The storefront is served from a separate origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	checkoutLimiter := NewRateLimiter(10 * time.Second)

	r.Get("/", api.Root)
	r.Get("/test", api.Diagnostics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", api.ListProducts)
		r.Get("/status", api.GetStatus)
		r.Post("/status/toggle", api.ToggleStatus)
		r.Post("/cart/calc", api.CalcCart)
		r.Post("/checkout", checkoutLimiter.Middleware(api.Checkout))
	})

	return r
}
