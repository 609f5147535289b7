// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the ride API.
//
// [RideAPI] hides the REST transport from the CLI: it serialises requests,
// unwraps the {success, data} envelope and maps error envelopes to the
// sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401, [ErrConflict] for 409).
//
// The bearer token obtained at register or login is kept in a [TokenStore]
// and attached to every subsequent request.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ride-hail/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RideAPI talks to the ride-hailing server.
type RideAPI interface {
	// Register creates an account and stores the issued token.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)

	// Me returns the identity the server resolves from the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// EstimateFares returns provider quotes for a trip, cheapest first.
	EstimateFares(ctx context.Context, request models.RideRequest) ([]models.FareEstimate, error)

	// BookRide books the trip with the cheapest (or the requested) provider.
	BookRide(ctx context.Context, request models.RideRequest) (models.Ride, error)

	// RideHistory lists the caller's rides, newest first.
	RideHistory(ctx context.Context) ([]models.Ride, error)

	// SubmitReview rates a ride the caller booked.
	SubmitReview(ctx context.Context, rideID string, review models.ReviewRequest) (models.Review, error)
}

// TokenStore keeps the bearer token between client runs.
type TokenStore interface {
	// Load returns the stored token or [ErrTokenNotFound].
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}
