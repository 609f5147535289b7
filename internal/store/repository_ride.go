package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/models"
)

// rideRepository is the SQL implementation of [RideRepository] over the
// "rides" table.
type rideRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewRideRepository(db *DB, logger *logger.Logger) RideRepository {
	logger.Debug().Msg("creating ride repository")
	return &rideRepository{
		db:     db,
		logger: logger,
	}
}

func (r *rideRepository) SaveRide(ctx context.Context, ride models.Ride) error {
	query, args, err := buildInsertRideQuery(r.db.builder, ride)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*rideRepository.SaveRide").Msg("error inserting ride")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *rideRepository) GetRide(ctx context.Context, rideID string) (models.Ride, error) {
	query, args, err := buildSelectRidesQuery(r.db.builder, sq.Eq{"id": rideID})
	if err != nil {
		return models.Ride{}, err
	}

	ride, err := scanRide(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ride{}, ErrRideNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*rideRepository.GetRide").Msg("error scanning ride")
		return models.Ride{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return ride, nil
}

func (r *rideRepository) ListUserRides(ctx context.Context, userID string) ([]models.Ride, error) {
	return r.listRides(ctx, sq.Eq{"user_id": userID})
}

func (r *rideRepository) ListRides(ctx context.Context) ([]models.Ride, error) {
	return r.listRides(ctx, nil)
}

func (r *rideRepository) listRides(ctx context.Context, where sq.Sqlizer) ([]models.Ride, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRidesQuery(r.db.builder, where)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*rideRepository.listRides").Msg("error querying rides")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	rides := make([]models.Ride, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			log.Err(err).Str("func", "*rideRepository.listRides").Msg("error scanning ride")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rides = append(rides, ride)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rides, nil
}
