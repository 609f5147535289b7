package store

import "github.com/MKhiriev/go-ride-hail/internal/logger"

type Storages struct {
	UserRepository   UserRepository
	RideRepository   RideRepository
	ReviewRepository ReviewRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RideRepository:   NewRideRepository(db, logger),
		ReviewRepository: NewReviewRepository(db, logger),
	}
}
