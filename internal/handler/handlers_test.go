package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/models"
)

func newTestConfig(address, env string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{Environment: env},
		Server: config.Server{HTTPAddress: address},
	}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.StructuredConfig
		wantErr error
	}{
		{name: "http address", cfg: newTestConfig(":5000", config.EnvProduction)},
		{name: "development", cfg: newTestConfig(":5000", config.EnvDevelopment)},
		{name: "no address", cfg: newTestConfig("", config.EnvProduction), wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, models.NewAppBuildInfo("v1", "", ""), logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := newTestConfig(":5000", config.EnvProduction)

	h1, err := NewHandlers(&service.Services{}, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(&service.Services{}, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
