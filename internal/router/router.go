// Package router sets up all HTTP routes and the middleware chain of the
// webshop API.
package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"webshop/internal/handlers"
	"webshop/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable write limiting.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, outermost first.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", api.Health)

		r.Route("/cms/v1/translations", func(r chi.Router) {
			r.Post("/", api.CreateTranslation)
			r.Get("/", api.ListTranslations)
		})

		r.Route("/category/v1/categories", func(r chi.Router) {
			r.Post("/", api.CreateCategory)
			r.Get("/", api.ListCategories)
			r.Get("/{id}", api.GetCategory)
			r.Put("/{id}", api.UpdateCategory)
			r.Delete("/{id}", api.DeleteCategory)
		})

		// Products: the collection lives under /products, single items
		// directly under /v1.
		r.Route("/product/v1", func(r chi.Router) {
			r.Post("/products", api.CreateProduct)
			r.Get("/products", api.ListProducts)
			r.Get("/{id}", api.GetProduct)
			r.Put("/{id}", api.UpdateProduct)
			r.Delete("/{id}", api.DeleteProduct)
		})

		r.Route("/shopping-basket/v1/shopping-baskets", func(r chi.Router) {
			r.Post("/", api.CreateBasket)
			r.Get("/{id}", api.GetBasket)
			r.Post("/{id}", api.AddBasketItem)
			r.Delete("/items/{id}", api.RemoveBasketItem)
		})
	})

	return r
}
