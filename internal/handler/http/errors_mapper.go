package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
)

// mappedError is the client-facing classification of a sentinel error.
// An empty message means the sentinel's own text is shown.
type mappedError struct {
	status  int
	message string
}

var errorStatusMap = map[error]mappedError{
	utils.ErrEmptyBody:     {status: http.StatusBadRequest, message: app.MsgInvalidJSON},
	utils.ErrMalformedJSON: {status: http.StatusBadRequest, message: app.MsgInvalidJSON},
	utils.ErrNoBearerToken: {status: http.StatusUnauthorized, message: app.MsgNoTokenProvided},

	validators.ErrLocationsRequired:      {status: http.StatusBadRequest},
	validators.ErrInvalidPickupLocation:  {status: http.StatusBadRequest},
	validators.ErrInvalidDropoffLocation: {status: http.StatusBadRequest},
	validators.ErrInvalidRideType:        {status: http.StatusBadRequest},
	validators.ErrInvalidEmail:           {status: http.StatusBadRequest},
	validators.ErrInvalidPhone:           {status: http.StatusBadRequest},
	validators.ErrPasswordTooShort:       {status: http.StatusBadRequest},
	validators.ErrPasswordTooLong:        {status: http.StatusBadRequest},
	validators.ErrInvalidRole:            {status: http.StatusBadRequest},
	validators.ErrInvalidRating:          {status: http.StatusBadRequest},
	validators.ErrCommentTooLong:         {status: http.StatusBadRequest},

	store.ErrEmailAlreadyExists:  {status: http.StatusConflict, message: app.MsgEmailAlreadyRegistered},
	store.ErrRideNotFound:        {status: http.StatusNotFound, message: app.MsgRideNotFound},
	store.ErrReviewAlreadyExists: {status: http.StatusConflict, message: app.MsgRideAlreadyReviewed},
}

// statusFromError looks err up in errorStatusMap. ok is false for errors
// that are not a known sentinel; those are unclassified faults.
func statusFromError(err error) (status int, message string, ok bool) {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			message = mapped.message
			if message == "" {
				message = target.Error()
			}
			return mapped.status, message, true
		}
	}
	return http.StatusInternalServerError, "", false
}
