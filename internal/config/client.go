package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the API root the client talks to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// TokenFile is the local token storage location.
	TokenFile string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains process-level settings (name, log level).
	App App
	// Adapter contains the API address, timeout and token location.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from
// environment variables, the optional JSON file and defaults. Non-empty
// fields of overrides (typically command-line flags) take precedence.
func GetClientConfig(overrides Adapter) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withStatic(&StructuredConfig{Adapter: overrides}).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout.Duration(),
			TokenFile:      cfg.Adapter.TokenFile,
		},
	}

	return clientCfg, clientCfg.validate()
}

func (b *configBuilder) withStatic(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}
