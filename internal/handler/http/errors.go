// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/utils"
	"github.com/MKhiriev/go-ride-hail/models"
)

// timestampLayout is ISO 8601 with milliseconds in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// now is replaced in tests.
var now = time.Now

// classify turns any error into an *apperror.Error: classified errors pass
// through, known sentinels get their mapped status, anything else becomes
// a non-operational 500.
func classify(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if status, message, ok := statusFromError(err); ok {
		return apperror.Wrap(err, status, message)
	}

	return apperror.Internal(err)
}

// respondError is the terminal error responder. It logs the failure and
// writes the error envelope with the classified status.
//
// Outside development mode unclassified faults are reported as "Internal
// Server Error" and no stack is included.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := classify(err)
	timestamp := now().UTC().Format(timestampLayout)

	log := logger.FromRequest(r)
	event := log.Warn()
	if appErr.StatusCode >= http.StatusInternalServerError {
		event = log.Error().Str("stack", appErr.Stack())
	}
	event.Err(err).
		Str("message", appErr.Message).
		Int("status", appErr.StatusCode).
		Str("timestamp", timestamp).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg("request failed")

	body := models.ErrorBody{
		Message:    appErr.Message,
		StatusCode: appErr.StatusCode,
		Timestamp:  timestamp,
		Path:       r.URL.Path,
		Method:     r.Method,
	}
	if h.development {
		body.Stack = appErr.Stack()
	} else if !appErr.Operational {
		body.Message = app.MsgInternalServerError
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: body}, appErr.StatusCode); writeErr != nil {
		log.Err(writeErr).Msg("writing error response failed")
	}
}

// respond writes data inside the success envelope.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, models.Response[any]{Success: true, Data: data}, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
