package api

import (
	_ "unitconv/docs"
	"unitconv/internal/convert/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(conversionHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI and Prometheus scrape endpoint
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler())

	router.Get("/", conversionHandler.Root)
	router.Post("/api/v1/convert/{category}", conversionHandler.Convert)
	router.Get("/api/v1/units", conversionHandler.ListCategories)
	router.Get("/api/v1/units/{category}", conversionHandler.ListUnits)
	router.Get("/api/v1/currency/status", conversionHandler.CurrencyStatus)
	return router
}
