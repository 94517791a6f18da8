package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pmezhin/vesselwatch/internal/telemetry"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/vessel", h.getVessel)
	router.Get("/api/version/", h.getServerVersion)

	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", telemetry.MetricsHandler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
