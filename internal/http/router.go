package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewRouter(h *CartHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/products", h.ListProducts)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddProduct)
		r.Put("/items/{product_id}", h.UpdateProductAmount)
		r.Delete("/items/{product_id}", h.RemoveProduct)
	})

	return otelhttp.NewHandler(r, "rocketshoes")
}
