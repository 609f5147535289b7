package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.UserID).Msg("user registered")

	w.Header().Set("Authorization", utils.BearerHeader(result.Token))
	h.respond(w, r, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", utils.BearerHeader(result.Token))
	h.respond(w, r, result, http.StatusOK)
}

// me returns the identity resolved by the authentication stage.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.respondError(w, r, apperror.NewAuthentication(app.MsgUserNotAuthenticated))
		return
	}

	h.respond(w, r, identity, http.StatusOK)
}
