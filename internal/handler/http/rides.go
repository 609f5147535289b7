package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
)

const rideIDParam = "rideId"

func (h *Handler) estimateFares(w http.ResponseWriter, r *http.Request) {
	request, ok := utils.GetRideRequestFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperror.NewValidation(app.MsgLocationsRequired))
		return
	}

	estimates, err := h.services.RideService.EstimateFares(r.Context(), request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, estimates, http.StatusOK)
}

func (h *Handler) bookRide(w http.ResponseWriter, r *http.Request) {
	identity, request, err := identityAndRideRequest(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	ride, err := h.services.RideService.BookRide(r.Context(), identity, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, ride, http.StatusCreated)
}

func (h *Handler) rideHistory(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperror.NewAuthentication(app.MsgUserNotAuthenticated))
		return
	}

	rides, err := h.services.RideService.RideHistory(r.Context(), identity.SubjectID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, nonNil(rides), http.StatusOK)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperror.NewAuthentication(app.MsgUserNotAuthenticated))
		return
	}

	var request models.ReviewRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		h.respondError(w, r, err)
		return
	}

	review, err := h.services.RideService.SubmitReview(r.Context(), identity.SubjectID, chi.URLParam(r, rideIDParam), request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, review, http.StatusCreated)
}

func (h *Handler) allRides(w http.ResponseWriter, r *http.Request) {
	rides, err := h.services.RideService.AllRides(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, nonNil(rides), http.StatusOK)
}

func identityAndRideRequest(r *http.Request) (models.Identity, models.RideRequest, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, models.RideRequest{}, apperror.NewAuthentication(app.MsgUserNotAuthenticated)
	}

	request, ok := utils.GetRideRequestFromContext(r.Context())
	if !ok {
		return models.Identity{}, models.RideRequest{}, apperror.NewValidation(app.MsgLocationsRequired)
	}

	return identity, request, nil
}

// nonNil keeps empty lists serialized as [] rather than null.
func nonNil(rides []models.Ride) []models.Ride {
	if rides == nil {
		return []models.Ride{}
	}
	return rides
}
