package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
	"github.com/MKhiriev/go-ride-hail/models"
)

type rideService struct {
	rideRepository   store.RideRepository
	reviewRepository store.ReviewRepository

	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func NewRideService(rideRepository store.RideRepository, reviewRepository store.ReviewRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) RideService {
	return &rideService{
		rideRepository:   rideRepository,
		reviewRepository: reviewRepository,
		validator:        validator,
		ids:              ids,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *rideService) EstimateFares(ctx context.Context, request models.RideRequest) ([]models.FareEstimate, error) {
	if err := s.validateRideRequest(ctx, &request); err != nil {
		return nil, err
	}

	rideTypes := models.RideTypes()
	if request.RideType != "" {
		rideTypes = []string{request.RideType}
	}

	return quoteAll(*request.PickupLocation, *request.DropoffLocation, rideTypes), nil
}

// BookRide books with the named provider, or with the cheapest one when
// none is named. The ride type defaults to economy.
func (s *rideService) BookRide(ctx context.Context, identity models.Identity, request models.RideRequest) (models.Ride, error) {
	log := logger.FromContext(ctx)

	if err := s.validateRideRequest(ctx, &request); err != nil {
		return models.Ride{}, err
	}

	if request.RideType == "" {
		request.RideType = models.RideTypeEconomy
	}

	estimates := quoteAll(*request.PickupLocation, *request.DropoffLocation, []string{request.RideType})
	chosen := estimates[0]
	if request.Provider != "" {
		provider, ok := FindProvider(request.Provider)
		if !ok {
			return models.Ride{}, apperror.NewValidation(app.MsgInvalidProvider)
		}
		for _, e := range estimates {
			if e.Provider == provider.Name {
				chosen = e
				break
			}
		}
	}

	ride := models.Ride{
		RideID:          s.ids.Generate(),
		UserID:          identity.SubjectID,
		Pickup:          *request.PickupLocation,
		Dropoff:         *request.DropoffLocation,
		RideType:        chosen.RideType,
		Provider:        chosen.Provider,
		Fare:            chosen.Fare,
		ETA:             chosen.ETA,
		DistanceKm:      chosen.DistanceKm,
		DurationMinutes: chosen.DurationMinutes,
		Status:          models.RideStatusBooked,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.rideRepository.SaveRide(ctx, ride); err != nil {
		log.Err(err).Str("user_id", identity.SubjectID).Msg("saving ride failed")
		return models.Ride{}, fmt.Errorf("saving ride failed: %w", err)
	}
	log.Info().Str("ride_id", ride.RideID).Str("provider", ride.Provider).Float64("fare", ride.Fare).Msg("ride booked")

	return ride, nil
}

func (s *rideService) RideHistory(ctx context.Context, userID string) ([]models.Ride, error) {
	rides, err := s.rideRepository.ListUserRides(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("listing user rides failed")
		return nil, fmt.Errorf("listing user rides failed: %w", err)
	}
	return rides, nil
}

// SubmitReview attaches a review to one of the caller's rides. Rides of
// other accounts are reported as not found.
func (s *rideService) SubmitReview(ctx context.Context, userID, rideID string, request models.ReviewRequest) (models.Review, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, &request); err != nil {
		return models.Review{}, apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}

	ride, err := s.rideRepository.GetRide(ctx, rideID)
	if err != nil {
		if errors.Is(err, store.ErrRideNotFound) {
			return models.Review{}, apperror.Wrap(err, http.StatusNotFound, app.MsgRideNotFound)
		}
		log.Err(err).Str("ride_id", rideID).Msg("ride lookup failed")
		return models.Review{}, fmt.Errorf("ride lookup failed: %w", err)
	}
	if ride.UserID != userID {
		log.Debug().Str("ride_id", rideID).Str("user_id", userID).Msg("review for a ride of another user")
		return models.Review{}, apperror.NewNotFound(app.MsgRideNotFound)
	}

	review := models.Review{
		ReviewID:  s.ids.Generate(),
		RideID:    ride.RideID,
		UserID:    userID,
		Rating:    request.Rating,
		Comment:   request.Comment,
		CreatedAt: s.now().UTC(),
	}

	if err = s.reviewRepository.SaveReview(ctx, review); err != nil {
		if errors.Is(err, store.ErrReviewAlreadyExists) {
			return models.Review{}, apperror.Wrap(err, http.StatusConflict, app.MsgRideAlreadyReviewed)
		}
		log.Err(err).Str("ride_id", rideID).Msg("saving review failed")
		return models.Review{}, fmt.Errorf("saving review failed: %w", err)
	}

	return review, nil
}

func (s *rideService) AllRides(ctx context.Context) ([]models.Ride, error) {
	rides, err := s.rideRepository.ListRides(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing rides failed")
		return nil, fmt.Errorf("listing rides failed: %w", err)
	}
	return rides, nil
}

func (s *rideService) validateRideRequest(ctx context.Context, request *models.RideRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}
	return nil
}
