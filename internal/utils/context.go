// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request/response bodies, bearer credential parsing,
// HTTP client initialization and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-ride-hail/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the verified caller identity is
// stored. Only the authentication stage writes it.
var IdentityCtxKey = contextKey("identity")

// RideRequestCtxKey is the key under which a validated and sanitized ride
// request is stored by the ride request validation stage.
var RideRequestCtxKey = contextKey("rideRequest")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  - authentication succeeded for this request
//   - ok == false - value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithRideRequest returns a copy of ctx carrying a validated ride request.
func WithRideRequest(ctx context.Context, req models.RideRequest) context.Context {
	return context.WithValue(ctx, RideRequestCtxKey, req)
}

// GetRideRequestFromContext retrieves the validated ride request.
func GetRideRequestFromContext(ctx context.Context) (models.RideRequest, bool) {
	req, ok := ctx.Value(RideRequestCtxKey).(models.RideRequest)
	return req, ok
}
