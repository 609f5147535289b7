package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
)

// validateRideRequest decodes the body as a ride request, validates and
// normalizes it, and stores the result under [utils.RideRequestCtxKey].
func (h *Handler) validateRideRequest(r *http.Request) (*http.Request, error) {
	var request models.RideRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(r.Context(), &request); err != nil {
		return nil, apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}

	return r.WithContext(utils.WithRideRequest(r.Context(), request)), nil
}
