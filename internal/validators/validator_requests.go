package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-ride-hail/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldLocations targets presence of both pickup and dropoff locations.
	FieldLocations = "locations"

	// FieldPickupLocation targets the pickup coordinate range.
	FieldPickupLocation = "pickup_location"

	// FieldDropoffLocation targets the dropoff coordinate range.
	FieldDropoffLocation = "dropoff_location"

	// FieldRideType targets the optional ride type.
	FieldRideType = "ride_type"

	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPassword = "password"
	FieldRole     = "role"

	FieldRating  = "rating"
	FieldComment = "comment"
)

const (
	// MinPasswordLength is the minimum accepted password length in characters.
	MinPasswordLength = 8

	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72

	// MaxCommentLength is the maximum review comment length in characters.
	MaxCommentLength = 500

	MinRating = 1
	MaxRating = 5
)

// RequestValidator implements Validator for the request payloads of the
// ride API: RideRequest, RegisterRequest and ReviewRequest.
//
// When given a pointer, Validate also normalizes the payload in place:
// ride type and provider are trimmed and lower-cased, free text is passed
// through SanitizeString.
type RequestValidator struct {
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Returns ErrUnsupportedType for anything else.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RideRequest:
		return v.validateRideRequest(ctx, &value, fields...)
	case *models.RideRequest:
		if value == nil {
			return ErrLocationsRequired
		}
		return v.validateRideRequest(ctx, value, fields...)
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, &value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case models.ReviewRequest:
		return v.validateReviewRequest(ctx, &value, fields...)
	case *models.ReviewRequest:
		return v.validateReviewRequest(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRideRequest(ctx context.Context, request *models.RideRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLocations, FieldPickupLocation, FieldDropoffLocation, FieldRideType}
	}

	request.RideType = strings.ToLower(strings.TrimSpace(request.RideType))
	request.Provider = strings.ToLower(strings.TrimSpace(request.Provider))

	for _, f := range fields {
		switch f {
		case FieldLocations:
			if request.PickupLocation == nil || request.DropoffLocation == nil {
				return ErrLocationsRequired
			}
		case FieldPickupLocation:
			if request.PickupLocation == nil || !IsValidCoordinates(request.PickupLocation.Lat, request.PickupLocation.Lng) {
				return ErrInvalidPickupLocation
			}
		case FieldDropoffLocation:
			if request.DropoffLocation == nil || !IsValidCoordinates(request.DropoffLocation.Lat, request.DropoffLocation.Lng) {
				return ErrInvalidDropoffLocation
			}
		case FieldRideType:
			if request.RideType != "" && !IsValidRideType(request.RideType) {
				return ErrInvalidRideType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegisterRequest(ctx context.Context, request *models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPhone, FieldPassword, FieldRole}
	}

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Name = SanitizeString(request.Name)
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !IsValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if request.Phone != "" && !IsValidPhoneNumber(request.Phone) {
				return ErrInvalidPhone
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if len(request.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldRole:
			if request.Role != "" && !slices.Contains(models.SelfAssignableRoles(), request.Role) {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateReviewRequest(ctx context.Context, request *models.ReviewRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			if request.Rating < MinRating || request.Rating > MaxRating {
				return ErrInvalidRating
			}
		case FieldComment:
			// the limit applies to what the user typed, not to the escaped form
			if utf8.RuneCountInString(strings.TrimSpace(request.Comment)) > MaxCommentLength {
				return ErrCommentTooLong
			}
			request.Comment = SanitizeString(request.Comment)
		default:
			return ErrUnknownField
		}
	}

	return nil
}
