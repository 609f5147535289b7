package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
	"github.com/MKhiriev/go-ride-hail/models"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// development exposes messages of unclassified faults and stack traces
	// in error envelopes.
	development bool
	buildInfo   models.AppBuildInfo

	registry *prometheus.Registry
	metrics  *httpMetrics

	logger *logger.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithDevelopment switches the error responder to development mode.
func WithDevelopment(development bool) Option {
	return func(h *Handler) {
		h.development = development
	}
}

// WithBuildInfo sets the build metadata reported by /healthz.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(h *Handler) {
		h.buildInfo = info
	}
}

// WithRegistry sets the Prometheus registry request metrics are
// registered in and /metrics is served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(h *Handler) {
		h.registry = registry
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.registry == nil {
		h.registry = prometheus.NewRegistry()
		h.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	h.metrics = newHTTPMetrics(h.registry)

	logger.Info().Bool("development", h.development).Msg("http handler created")
	return h
}
