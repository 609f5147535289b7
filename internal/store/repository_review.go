package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/models"
)

type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// SaveReview inserts review. A ride holds at most one review; a second one
// yields [ErrReviewAlreadyExists].
func (r *reviewRepository) SaveReview(ctx context.Context, review models.Review) error {
	query, args, err := buildInsertReviewQuery(r.db.builder, review)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrReviewAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.SaveReview").Msg("error inserting review")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
