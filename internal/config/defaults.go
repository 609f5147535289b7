package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultAppName         = "go-ride-hail"
	defaultLogLevel        = "debug"
	defaultTokenExpiry     = 7 * 24 * time.Hour
	defaultDSN             = "ride-hail.db"
	defaultHTTPAddress     = "localhost:5000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAPIURL          = "http://localhost:5000"
	defaultClientTimeout   = 30 * time.Second
	tokenFileName          = "token"
)

// DevelopmentTokenSecret is the signing secret used when JWT_SECRET is not
// set and the process runs in development mode. It is public and must never
// sign production tokens.
const DevelopmentTokenSecret = "default-secret"

// defaultConfig returns the lowest-priority configuration source.
// TokenSecret has no default: see validate.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:        defaultAppName,
			Environment: EnvProduction,
			LogLevel:    defaultLogLevel,
		},
		Auth: Auth{
			TokenExpiry: Duration(defaultTokenExpiry),
		},
		Storage: Storage{
			DSN: defaultDSN,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  Duration(defaultRequestTimeout),
			ShutdownTimeout: Duration(defaultShutdownTimeout),
		},
		Adapter: Adapter{
			BaseURL:        defaultAPIURL,
			RequestTimeout: Duration(defaultClientTimeout),
			TokenFile:      defaultTokenFile(),
		},
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "." + defaultAppName + "-" + tokenFileName
	}
	return filepath.Join(dir, defaultAppName, tokenFileName)
}
