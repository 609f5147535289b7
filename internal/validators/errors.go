package validators

import (
	"errors"

	"github.com/MKhiriev/go-ride-hail/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrLocationsRequired      = errors.New(app.MsgLocationsRequired)
	ErrInvalidPickupLocation  = errors.New(app.MsgInvalidPickupCoordinates)
	ErrInvalidDropoffLocation = errors.New(app.MsgInvalidDropoffCoordinates)
	ErrInvalidRideType        = errors.New(app.MsgInvalidRideType)

	ErrInvalidEmail     = errors.New(app.MsgInvalidEmail)
	ErrInvalidPhone     = errors.New(app.MsgInvalidPhone)
	ErrPasswordTooShort = errors.New(app.MsgPasswordTooShort)
	ErrPasswordTooLong  = errors.New(app.MsgPasswordTooLong)
	ErrInvalidRole      = errors.New(app.MsgInvalidRole)

	ErrInvalidRating  = errors.New(app.MsgInvalidRating)
	ErrCommentTooLong = errors.New(app.MsgCommentTooLong)
)
