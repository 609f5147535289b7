package validators

import (
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-ride-hail/models"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)

	htmlReplacer = strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"&", "&amp;",
	)
)

// SanitizeString trims s and escapes the characters < > " ' & as HTML
// entities. Each character is replaced exactly once.
func SanitizeString(s string) string {
	if s == "" {
		return ""
	}
	return htmlReplacer.Replace(strings.TrimSpace(s))
}

// IsValidEmail reports whether email looks like local@domain.tld.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsValidPhoneNumber accepts 10 to 12 digit numbers with an optional
// leading +, optional parentheses around the first group and single
// space, dash or dot separators.
func IsValidPhoneNumber(phone string) bool {
	return phoneRegexp.MatchString(phone)
}

// IsValidCoordinates reports whether lat is in [-90, 90] and lng is in
// [-180, 180]. NaN is never valid.
func IsValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// IsValidRideType reports whether rideType is one of the bookable types.
func IsValidRideType(rideType string) bool {
	return slices.Contains(models.RideTypes(), rideType)
}
