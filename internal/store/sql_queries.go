package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ride-hail/models"
)

var (
	userColumns = []string{"id", "email", "name", "phone", "password_hash", "role", "created_at"}

	rideColumns = []string{
		"id", "user_id",
		"pickup_lat", "pickup_lng", "dropoff_lat", "dropoff_lng",
		"ride_type", "provider", "fare", "eta_minutes",
		"distance_km", "duration_minutes", "status", "created_at",
	}

	reviewColumns = []string{"id", "ride_id", "user_id", "rating", "comment", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.Name, user.Phone, user.PasswordHash, user.Role, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertRideQuery(b sq.StatementBuilderType, ride models.Ride) (string, []any, error) {
	query, args, err := b.Insert(ride.TableName()).
		Columns(rideColumns...).
		Values(
			ride.RideID, ride.UserID,
			ride.Pickup.Lat, ride.Pickup.Lng, ride.Dropoff.Lat, ride.Dropoff.Lng,
			ride.RideType, ride.Provider, ride.Fare, ride.ETA,
			ride.DistanceKm, ride.DurationMinutes, ride.Status, ride.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectRidesQuery selects rides newest first, filtered by where when
// it is non-nil.
func buildSelectRidesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	builder := b.Select(rideColumns...).
		From(models.Ride{}.TableName()).
		OrderBy("created_at DESC", "id DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertReviewQuery(b sq.StatementBuilderType, review models.Review) (string, []any, error) {
	query, args, err := b.Insert(review.TableName()).
		Columns(reviewColumns...).
		Values(review.ReviewID, review.RideID, review.UserID, review.Rating, review.Comment, review.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.Name, &user.Phone, &user.PasswordHash, &user.Role, &user.CreatedAt)
	return user, err
}

func scanRide(row scanner) (models.Ride, error) {
	var ride models.Ride
	err := row.Scan(
		&ride.RideID, &ride.UserID,
		&ride.Pickup.Lat, &ride.Pickup.Lng, &ride.Dropoff.Lat, &ride.Dropoff.Lng,
		&ride.RideType, &ride.Provider, &ride.Fare, &ride.ETA,
		&ride.DistanceKm, &ride.DurationMinutes, &ride.Status, &ride.CreatedAt,
	)
	return ride, err
}
