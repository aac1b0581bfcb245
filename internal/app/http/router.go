package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"willowpack/estimator/internal/app/config"
	"willowpack/estimator/internal/app/http/handlers"
	"willowpack/estimator/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, h *handlers.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/pricing/table", h.PriceTable)
		r.Get("/pricing/shipping", h.ShippingOptions)
		r.Post("/pricing/markup", h.Markup)
		r.Get("/products", h.ProductKinds)
		r.Get("/products/{kind}/defaults", h.ProductDefaults)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.CreateOrder)
			r.Get("/{orderID}", h.GetOrder)
			r.Delete("/{orderID}", h.DeleteOrder)
			r.Post("/{orderID}/items", h.AddOrderItem)
			r.Delete("/{orderID}/items/{itemID}", h.RemoveOrderItem)
			r.Put("/{orderID}/sets", h.SetOrderSets)
			r.Post("/{orderID}/shipping", h.AddShipping)
		})

		r.Post("/quotes/price-list.csv", h.PriceListCSV)
		r.Post("/quotes/price-list.xlsx", h.PriceListXLSX)
		r.Post("/quotes/spec-sheet.csv", h.SpecSheetCSV)
		r.Get("/quotes", h.ListQuotes)
		r.Get("/quotes/number", h.NewQuoteNumber)
		r.Get("/quotes/export", h.ExportHistory)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes", h.CreateQuote)
			r.Post("/quotes/{number}/pdf", h.QuotePDF)
			r.Delete("/quotes/{number}", h.DeleteQuote)
		})
	})

	return r
}
