package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-ride-hail/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type RideRepository interface {
	SaveRide(ctx context.Context, ride models.Ride) error
	GetRide(ctx context.Context, rideID string) (models.Ride, error)
	// ListUserRides returns the rides booked by userID, newest first.
	ListUserRides(ctx context.Context, userID string) ([]models.Ride, error)
	// ListRides returns every ride, newest first.
	ListRides(ctx context.Context) ([]models.Ride, error)
}

type ReviewRepository interface {
	SaveReview(ctx context.Context, review models.Review) error
}
