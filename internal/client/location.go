package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ride-hail/models"
)

// ErrInvalidLocation is returned for a coordinate argument that is not of
// the form "lat,lng".
var ErrInvalidLocation = errors.New(`location must be "lat,lng"`)

// ParseLocation parses "lat,lng" (spaces allowed around the parts).
// Range checks are left to the server.
func ParseLocation(raw string) (models.Location, error) {
	latRaw, lngRaw, found := strings.Cut(raw, ",")
	if !found {
		return models.Location{}, fmt.Errorf("%w: %q", ErrInvalidLocation, raw)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: latitude %q", ErrInvalidLocation, latRaw)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: longitude %q", ErrInvalidLocation, lngRaw)
	}

	return models.Location{Lat: lat, Lng: lng}, nil
}

// NewRideRequest builds a ride request from "lat,lng" arguments.
func NewRideRequest(pickup, dropoff, rideType, provider string) (models.RideRequest, error) {
	from, err := ParseLocation(pickup)
	if err != nil {
		return models.RideRequest{}, fmt.Errorf("pickup: %w", err)
	}

	to, err := ParseLocation(dropoff)
	if err != nil {
		return models.RideRequest{}, fmt.Errorf("dropoff: %w", err)
	}

	return models.RideRequest{
		PickupLocation:  &from,
		DropoffLocation: &to,
		RideType:        strings.ToLower(strings.TrimSpace(rideType)),
		Provider:        strings.TrimSpace(provider),
	}, nil
}
