package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ride-hail/models"
)

// TokenService issues and verifies signed identity assertions.
type TokenService interface {
	// Issue signs a token for the subject. An empty role becomes "user".
	Issue(ctx context.Context, subjectID, email, role string) (models.Token, error)
	// Verify returns the identity carried by a valid, unexpired token.
	// Every failure is reported with the same 401 message.
	Verify(ctx context.Context, token string) (models.Identity, error)
}

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
}

type RideService interface {
	// EstimateFares quotes every provider for the requested ride type, or
	// for all ride types when none is given, cheapest first.
	EstimateFares(ctx context.Context, request models.RideRequest) ([]models.FareEstimate, error)
	BookRide(ctx context.Context, identity models.Identity, request models.RideRequest) (models.Ride, error)
	RideHistory(ctx context.Context, userID string) ([]models.Ride, error)
	SubmitReview(ctx context.Context, userID, rideID string, request models.ReviewRequest) (models.Review, error)
	AllRides(ctx context.Context) ([]models.Ride, error)
}

// IDGenerator produces unique identifiers for new records.
type IDGenerator interface {
	Generate() string
}
