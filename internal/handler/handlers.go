// Package handler aggregates the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/handler/http"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when an HTTP address is configured.
// The error responder runs in development mode when the app environment is
// "development".
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger,
			http.WithDevelopment(cfg.App.IsDevelopment()),
			http.WithBuildInfo(buildInfo),
		)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
