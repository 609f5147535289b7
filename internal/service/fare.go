package service

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ride-hail/models"
)

const (
	earthRadiusKm   = 6371.0
	averageSpeedKmh = 30.0
)

// Provider is a ride provider's tariff.
type Provider struct {
	Name          string
	BaseFare      float64
	PerKm         float64
	PerMinute     float64
	MinimumFare   float64
	PickupMinutes int
}

// Providers returns the tariffs quoted by EstimateFares.
func Providers() []Provider {
	return []Provider{
		{Name: "Uber", BaseFare: 2.50, PerKm: 1.20, PerMinute: 0.25, MinimumFare: 7.00, PickupMinutes: 4},
		{Name: "Lyft", BaseFare: 2.00, PerKm: 1.30, PerMinute: 0.20, MinimumFare: 6.50, PickupMinutes: 5},
		{Name: "Bolt", BaseFare: 1.80, PerKm: 1.10, PerMinute: 0.22, MinimumFare: 6.00, PickupMinutes: 6},
	}
}

// rideTypeMultipliers scale the provider fare per ride type.
var rideTypeMultipliers = map[string]float64{
	models.RideTypeEconomy: 1.0,
	models.RideTypePremium: 1.75,
	models.RideTypeXL:      1.4,
}

// FindProvider looks a provider up by name, ignoring case.
func FindProvider(name string) (Provider, bool) {
	for _, p := range Providers() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Provider{}, false
}

// HaversineKm returns the great-circle distance between a and b.
func HaversineKm(a, b models.Location) float64 {
	lat1, lat2 := degreesToRadians(a.Lat), degreesToRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// TripDurationMinutes is the driving time at average city speed, rounded up.
func TripDurationMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm / averageSpeedKmh * 60))
}

// Quote prices a trip. The minimum fare applies before the ride type
// multiplier.
func (p Provider) Quote(distanceKm float64, durationMinutes int, rideType string) models.FareEstimate {
	multiplier, ok := rideTypeMultipliers[rideType]
	if !ok {
		multiplier = 1
	}

	fare := p.BaseFare + p.PerKm*distanceKm + p.PerMinute*float64(durationMinutes)
	fare = math.Max(fare, p.MinimumFare) * multiplier

	return models.FareEstimate{
		Provider:        p.Name,
		Fare:            roundCents(fare),
		ETA:             p.PickupMinutes,
		RideType:        rideType,
		DistanceKm:      roundCents(distanceKm),
		DurationMinutes: durationMinutes,
	}
}

// quoteAll prices the trip for every provider and the given ride types,
// cheapest first. Equal fares keep provider order.
func quoteAll(pickup, dropoff models.Location, rideTypes []string) []models.FareEstimate {
	distance := HaversineKm(pickup, dropoff)
	duration := TripDurationMinutes(distance)

	estimates := make([]models.FareEstimate, 0, len(rideTypes)*3)
	for _, rideType := range rideTypes {
		for _, p := range Providers() {
			estimates = append(estimates, p.Quote(distance, duration, rideType))
		}
	}

	slices.SortStableFunc(estimates, func(a, b models.FareEstimate) int {
		return cmp.Compare(a.Fare, b.Fare)
	})

	return estimates
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
