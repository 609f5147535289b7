package models

import (
	"encoding/json"
	"math"
	"time"
)

// Ride types accepted by the booking API.
const (
	RideTypeEconomy = "economy"
	RideTypePremium = "premium"
	RideTypeXL      = "xl"
)

// RideTypes returns all ride types in display order.
func RideTypes() []string {
	return []string{RideTypeEconomy, RideTypePremium, RideTypeXL}
}

// RideStatusBooked is the status of a freshly booked ride.
const RideStatusBooked = "booked"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UnmarshalJSON decodes a missing or null coordinate as NaN, so that
// {} is rejected by coordinate validation instead of passing as (0,0).
func (l *Location) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.Lat, l.Lng = orNaN(raw.Lat), orNaN(raw.Lng)
	return nil
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// RideRequest is the payload of the fare estimate and booking endpoints.
// Locations are pointers so that a missing location can be told apart
// from the (valid) null island coordinate.
type RideRequest struct {
	PickupLocation  *Location `json:"pickupLocation"`
	DropoffLocation *Location `json:"dropoffLocation"`
	RideType        string    `json:"rideType,omitempty"`

	// Provider optionally pins booking to a specific provider.
	Provider string `json:"provider,omitempty"`
}

// FareEstimate is a single provider quote for a trip.
type FareEstimate struct {
	Provider        string  `json:"provider"`
	Fare            float64 `json:"fare"`
	ETA             int     `json:"eta"`
	RideType        string  `json:"rideType"`
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
}

// Ride is a booked trip.
type Ride struct {
	RideID          string    `json:"id"`
	UserID          string    `json:"userId"`
	Pickup          Location  `json:"pickupLocation"`
	Dropoff         Location  `json:"dropoffLocation"`
	RideType        string    `json:"rideType"`
	Provider        string    `json:"provider"`
	Fare            float64   `json:"fare"`
	ETA             int       `json:"eta"`
	DistanceKm      float64   `json:"distanceKm"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Ride model.
func (r Ride) TableName() string {
	return "rides"
}
