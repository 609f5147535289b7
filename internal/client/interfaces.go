// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ride-hail/models"
)

// Client is the set of user-facing actions exposed by the CLI. Every
// action writes its human-readable result to the client's output.
type Client interface {
	Register(ctx context.Context, request models.RegisterRequest) error
	Login(ctx context.Context, credentials models.Credentials) error
	Logout() error
	WhoAmI(ctx context.Context) error
	Estimate(ctx context.Context, request models.RideRequest) error
	Book(ctx context.Context, request models.RideRequest) error
	History(ctx context.Context) error
	Review(ctx context.Context, rideID string, review models.ReviewRequest) error
}
