// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

// Environment names recognised in App.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// go-ride-hail binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: name, environment and log level.
	App App `envPrefix:"APP_"`

	// Auth holds the token signing parameters. Its variables carry no
	// prefix so that JWT_SECRET and JWT_EXPIRY are read verbatim.
	Auth Auth

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the ride API client used by cmd/client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Name is used as the logger role and the metrics namespace.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Environment is "development" or "production". Development mode adds
	// stack traces to error responses and allows the fallback token secret.
	// Env: APP_ENV
	Environment string `env:"ENV"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// IsDevelopment reports whether the process runs in development mode.
func (a App) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(a.Environment), EnvDevelopment)
}

// Auth holds the parameters of the token service.
type Auth struct {
	// TokenSecret is the shared HMAC secret used to sign and verify tokens.
	// Required outside development mode.
	// Env: JWT_SECRET
	TokenSecret string `env:"JWT_SECRET"`

	// TokenExpiry is how long an issued token stays valid ("7d", "12h").
	// Env: JWT_EXPIRY
	TokenExpiry Duration `env:"JWT_EXPIRY"`

	// TokenIssuer is embedded as the "iss" claim and checked on
	// verification when non-empty.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`
}

// Storage holds the database connection settings.
type Storage struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path. Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds settings of the outbound ride API client.
type Adapter struct {
	// BaseURL is the API root, e.g. "http://localhost:5000".
	// Env: ADAPTER_API_URL
	BaseURL string `env:"API_URL"`

	// RequestTimeout is the per-request timeout of the client.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where the client keeps the bearer token between runs.
	// Env: ADAPTER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server
// configuration. Sources are consulted in the following order; for every
// field the first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
