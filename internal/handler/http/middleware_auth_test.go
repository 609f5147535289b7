package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/config"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
)

// newGateHandler returns a Handler backed by a real token service.
func newGateHandler(t *testing.T) (*Handler, service.TokenService) {
	t.Helper()
	tokens := newTokenService(t)
	return NewHandler(&service.Services{TokenService: tokens}, logger.Nop()), tokens
}

func requestWithAuthorization(header string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/rides/history", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	return req
}

// ---- authenticate ----

func TestAuthenticate_NoToken(t *testing.T) {
	h, _ := newGateHandler(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "scheme only", header: "Bearer"},
		{name: "empty token", header: "Bearer    "},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "token without scheme", header: "eyJhbGciOiJIUzI1NiJ9.e30.sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := h.authenticate(requestWithAuthorization(tt.header))

			assert.Nil(t, next)
			assert.ErrorIs(t, err, apperror.NewAuthentication(app.MsgNoTokenProvided))
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	h, _ := newGateHandler(t)

	foreign, err := service.NewTokenService(config.Auth{TokenSecret: "another-secret", TokenExpiry: config.Duration(time.Hour)}, logger.Nop())
	require.NoError(t, err)
	expired, err := service.NewTokenService(config.Auth{TokenSecret: testSecret, TokenExpiry: config.Duration(time.Hour)}, logger.Nop(),
		service.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "garbage"},
		{name: "signed with another secret", token: issue(t, foreign, models.RoleRider)},
		{name: "expired", token: issue(t, expired, models.RoleRider)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := h.authenticate(requestWithAuthorization("Bearer " + tt.token))

			assert.Nil(t, next)
			assert.ErrorIs(t, err, apperror.NewAuthentication(app.MsgInvalidOrExpiredToken))
		})
	}
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	h, tokens := newGateHandler(t)

	for _, scheme := range []string{"Bearer", "bearer"} {
		next, err := h.authenticate(requestWithAuthorization(scheme + " " + issue(t, tokens, models.RoleDriver)))
		require.NoError(t, err)

		identity, ok := utils.GetIdentityFromContext(next.Context())
		require.True(t, ok)
		assert.Equal(t, models.Identity{SubjectID: "u1", Email: "u1@example.com", Role: models.RoleDriver}, identity)
	}
}

func TestAuthenticate_GarbageEnvelope(t *testing.T) {
	h, _ := newGateHandler(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/api/rides/history", "", "garbage")
	assertEnvelope(t, rec, http.StatusUnauthorized, app.MsgInvalidOrExpiredToken, http.MethodGet, "/api/rides/history")

	rec = doRequest(t, router, http.MethodGet, "/api/rides/history", "", "")
	assertEnvelope(t, rec, http.StatusUnauthorized, app.MsgNoTokenProvided, http.MethodGet, "/api/rides/history")
}

// ---- authorize ----

func withIdentity(r *http.Request, role string) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), models.Identity{SubjectID: "u1", Role: role}))
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		role    string
		wantErr error
	}{
		{name: "user on admin route", allowed: []string{models.RoleAdmin}, role: models.RoleUser,
			wantErr: apperror.NewAuthorization(app.MsgInsufficientPermissions)},
		{name: "admin on admin route", allowed: []string{models.RoleAdmin}, role: models.RoleAdmin},
		{name: "rider on rider and driver route", allowed: []string{models.RoleRider, models.RoleDriver}, role: models.RoleRider},
		{name: "empty role", allowed: []string{models.RoleUser}, role: "",
			wantErr: apperror.NewAuthorization(app.MsgInsufficientPermissions)},
		{name: "role match is case sensitive", allowed: []string{models.RoleAdmin}, role: "Admin",
			wantErr: apperror.NewAuthorization(app.MsgInsufficientPermissions)},
		{name: "empty allow-list", allowed: nil, role: models.RoleAdmin,
			wantErr: apperror.NewAuthorization(app.MsgInsufficientPermissions)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), tt.role)

			next, err := authorize(tt.allowed...)(req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, next)
				return
			}
			require.NoError(t, err)
			assert.Same(t, req, next, "authorize must not modify the request")
		})
	}
}

func TestAuthorize_WithoutIdentity(t *testing.T) {
	next, err := authorize(models.RoleAdmin)(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Nil(t, next)
	assert.ErrorIs(t, err, apperror.NewAuthentication(app.MsgUserNotAuthenticated))
}

func TestAuthorize_WithoutAuthenticateEnvelope(t *testing.T) {
	h, _ := newGateHandler(t)

	rec := httptest.NewRecorder()
	h.gate(authorize(models.RoleAdmin))(http.NotFoundHandler()).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assertEnvelope(t, rec, http.StatusUnauthorized, app.MsgUserNotAuthenticated, http.MethodGet, "/admin")
}

func TestAuthorize_AllowListIsCopied(t *testing.T) {
	roles := []string{models.RoleAdmin}
	stage := authorize(roles...)
	roles[0] = models.RoleUser

	_, err := stage(withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), models.RoleUser))
	assert.Error(t, err)
}

// ---- authenticate + authorize end to end ----

func TestGate_EndToEnd(t *testing.T) {
	h, tokens := newGateHandler(t)
	riderToken := issue(t, tokens, models.RoleRider)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, _ := utils.GetIdentityFromContext(r.Context())
		h.respond(w, r, identity, http.StatusOK)
	})

	riderOrDriver := h.gate(h.authenticate, authorize(models.RoleRider, models.RoleDriver))(ok)
	adminOnly := h.gate(h.authenticate, authorize(models.RoleAdmin))(ok)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rides", nil)
	req.Header.Set("Authorization", "Bearer "+riderToken)
	riderOrDriver.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleRider, decodeData[models.Identity](t, rec).Role)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+riderToken)
	adminOnly.ServeHTTP(rec, req)

	assertEnvelope(t, rec, http.StatusForbidden, app.MsgInsufficientPermissions, http.MethodPost, "/admin")
	assert.Empty(t, decodeError(t, rec).Error.Stack)
}
