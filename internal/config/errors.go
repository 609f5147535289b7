package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrMissingTokenSecret is returned when JWT_SECRET is not set outside
	// development mode.
	ErrMissingTokenSecret = errors.New("token secret is required: set JWT_SECRET")
	// ErrInvalidTokenExpiry indicates a non-positive token lifetime.
	ErrInvalidTokenExpiry = errors.New("invalid token expiry")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing address or timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a base URL without scheme).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
