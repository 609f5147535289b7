// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
	"github.com/MKhiriev/go-ride-hail/internal/store"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/internal/validators"
)

func freezeTime(t *testing.T, at time.Time) {
	t.Helper()
	previous := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = previous })
}

func respondWith(h *Handler, method, path string, err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.respondError(rec, httptest.NewRequest(method, path, nil), err)
	return rec
}

func TestRespondError_Envelope(t *testing.T) {
	freezeTime(t, time.Date(2026, 3, 1, 15, 4, 5, 123_000_000, time.FixedZone("UTC+3", 3*3600)))
	h := NewHandler(&service.Services{}, logger.Nop())

	rec := respondWith(h, http.MethodPost, "/api/rides/book", apperror.NewAuthorization(app.MsgInsufficientPermissions))

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"error": {
			"message": "Insufficient permissions",
			"statusCode": 403,
			"timestamp": "2026-03-01T12:04:05.123Z",
			"path": "/api/rides/book",
			"method": "POST"
		}
	}`, rec.Body.String())
}

func TestRespondError_PathExcludesQuery(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	rec := respondWith(h, http.MethodGet, "/api/rides/history?limit=5", apperror.NewNotFound("gone"))

	assert.Equal(t, "/api/rides/history", decodeError(t, rec).Error.Path)
}

func TestRespondError_Classification(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "authentication", err: apperror.NewAuthentication(app.MsgNoTokenProvided),
			wantStatus: http.StatusUnauthorized, wantMessage: app.MsgNoTokenProvided},
		{name: "validation", err: apperror.NewValidation(app.MsgInvalidRideType),
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidRideType},
		{name: "generic operational", err: apperror.New(http.StatusTooManyRequests, "slow down"),
			wantStatus: http.StatusTooManyRequests, wantMessage: "slow down"},
		{name: "wrapped operational", err: fmt.Errorf("handler: %w", apperror.NewConflict(app.MsgRideAlreadyReviewed)),
			wantStatus: http.StatusConflict, wantMessage: app.MsgRideAlreadyReviewed},
		{name: "empty body", err: utils.ErrEmptyBody,
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidJSON},
		{name: "malformed body", err: fmt.Errorf("%w: unexpected EOF", utils.ErrMalformedJSON),
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidJSON},
		{name: "validator sentinel", err: validators.ErrInvalidPickupLocation,
			wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidPickupCoordinates},
		{name: "store sentinel", err: fmt.Errorf("lookup: %w", store.ErrRideNotFound),
			wantStatus: http.StatusNotFound, wantMessage: app.MsgRideNotFound},
		{name: "unclassified", err: errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
		{name: "internal", err: apperror.Internal(store.ErrScanningRows),
			wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := respondWith(h, http.MethodGet, "/x", tt.err)

			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, resp.Error.StatusCode)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Empty(t, resp.Error.Stack)
		})
	}
}

func TestRespondError_Development(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop(), WithDevelopment(true))

	t.Run("unclassified fault keeps its message", func(t *testing.T) {
		rec := respondWith(h, http.MethodGet, "/x", errors.New("connection refused"))

		resp := decodeError(t, rec)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "connection refused", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.Stack)
	})

	t.Run("operational error carries stack", func(t *testing.T) {
		rec := respondWith(h, http.MethodGet, "/x", apperror.NewAuthentication(app.MsgInvalidOrExpiredToken))

		resp := decodeError(t, rec)
		assert.Equal(t, app.MsgInvalidOrExpiredToken, resp.Error.Message)
		assert.Contains(t, resp.Error.Stack, "goroutine")
	})
}

func TestStatusFromError(t *testing.T) {
	status, message, ok := statusFromError(fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists))
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, app.MsgEmailAlreadyRegistered, message)

	status, message, ok = statusFromError(validators.ErrCommentTooLong)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, app.MsgCommentTooLong, message)

	_, _, ok = statusFromError(store.ErrExecutingQuery)
	assert.False(t, ok)
}

func TestRespond_SuccessEnvelope(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.respond(rec, httptest.NewRequest(http.MethodGet, "/", nil), map[string]int{"n": 1}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"n":1}}`, rec.Body.String())
}
