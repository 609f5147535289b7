// Package config provides configuration loading, merging, and validation
// facilities for the ride-hail binaries.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables (JWT_SECRET, JWT_EXPIRY, APP_*, SERVER_*, ...)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
