package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-ride-hail/models"
)

// Role allow-lists per route group.
var (
	anyRole       = []string{models.RoleUser, models.RoleRider, models.RoleDriver, models.RoleAdmin}
	bookingRoles  = []string{models.RoleUser, models.RoleRider, models.RoleAdmin}
	adminOnlyRole = []string{models.RoleAdmin}
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTracing, h.withTraceID, h.withLogging, h.withMetrics, h.withRecovery)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.health)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.With(h.gate(h.authenticate)).Get("/api/auth/me", h.me)

	router.Route("/api/rides", func(r chi.Router) {
		r.With(h.gate(h.authenticate, authorize(anyRole...), h.validateRideRequest)).Post("/estimates", h.estimateFares)
		r.With(h.gate(h.authenticate, authorize(bookingRoles...), h.validateRideRequest)).Post("/book", h.bookRide)
		r.With(h.gate(h.authenticate, authorize(anyRole...))).Get("/history", h.rideHistory)
		r.With(h.gate(h.authenticate, authorize(bookingRoles...))).Post("/{"+rideIDParam+"}/review", h.submitReview)
	})

	router.With(h.gate(h.authenticate, authorize(adminOnlyRole...))).Get("/api/admin/rides", h.allRides)

	return router
}
