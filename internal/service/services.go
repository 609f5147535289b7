package service

import (
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
)

type Services struct {
	TokenService TokenService
	AuthService  AuthService
	RideService  RideService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		TokenService: tokenService,
		AuthService:  NewAuthService(storages.UserRepository, tokenService, validator, ids, logger),
		RideService:  NewRideService(storages.RideRepository, storages.ReviewRepository, validator, ids, logger),
	}, nil
}
