package http

import (
	"net/http"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
)

// authenticate resolves the caller identity from the "Authorization:
// Bearer <token>" header and stores it in the request context under
// [utils.IdentityCtxKey].
//
// An absent header, a scheme other than Bearer or an empty token yield
// 401 "No token provided". Verification failures are passed on unchanged:
// the token service reports all of them as 401 "Invalid or expired token".
func (h *Handler) authenticate(r *http.Request) (*http.Request, error) {
	log := logger.FromRequest(r)

	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		log.Debug().Err(err).Msg("no bearer token")
		return nil, apperror.Wrap(err, http.StatusUnauthorized, app.MsgNoTokenProvided)
	}

	identity, err := h.services.TokenService.Verify(r.Context(), token)
	if err != nil {
		log.Debug().Err(err).Msg("token verification failed")
		return nil, err
	}

	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("enduser.id", identity.SubjectID),
		attribute.String("enduser.role", identity.Role),
	)

	return r.WithContext(utils.WithIdentity(r.Context(), identity)), nil
}

// authorize returns a stage that admits only identities whose role is in
// allowedRoles. It never modifies the request.
func authorize(allowedRoles ...string) Stage {
	allowed := slices.Clone(allowedRoles)

	return func(r *http.Request) (*http.Request, error) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok {
			return nil, apperror.NewAuthentication(app.MsgUserNotAuthenticated)
		}

		if !slices.Contains(allowed, identity.Role) {
			logger.FromRequest(r).Debug().
				Str("user_id", identity.SubjectID).
				Str("role", identity.Role).
				Strs("allowed", allowed).
				Msg("role not allowed")
			return nil, apperror.NewAuthorization(app.MsgInsufficientPermissions)
		}

		return r, nil
	}
}
