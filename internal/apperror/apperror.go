// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apperror defines the uniform failure carrier used across the
// service. Every expected rejection (missing credential, insufficient role,
// malformed payload, unknown resource) is an operational [Error] carrying
// the HTTP status the error responder will use. Anything else is an
// unclassified fault and is reported as 500.
package apperror

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// Error is an operational failure with a status code and a client-facing
// message.
type Error struct {
	// StatusCode is the HTTP status written for this failure.
	StatusCode int

	// Message is safe to show to clients.
	Message string

	// Operational marks expected rejections. Unclassified faults have it
	// unset and their message is hidden outside development mode.
	Operational bool

	cause error
	stack []byte
}

// New constructs an operational error with the given status and message.
func New(statusCode int, message string) *Error {
	return &Error{
		StatusCode:  statusCode,
		Message:     message,
		Operational: true,
		stack:       debug.Stack(),
	}
}

// Wrap is like New but keeps err as the cause for [errors.Is] and logging.
func Wrap(err error, statusCode int, message string) *Error {
	e := New(statusCode, message)
	e.cause = err
	return e
}

// NewAuthentication returns a 401 error: missing, invalid or expired
// credential, or no identity where one is required.
func NewAuthentication(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NewAuthorization returns a 403 error: the identity's role is not allowed.
func NewAuthorization(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NewValidation returns a 400 error for a malformed request payload.
func NewValidation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NewNotFound returns a 404 error.
func NewNotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// NewConflict returns a 409 error.
func NewConflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal wraps an unexpected fault into a non-operational 500 error.
func Internal(err error) *Error {
	message := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		message = err.Error()
	}
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
		cause:      err,
		stack:      debug.Stack(),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Stack returns the goroutine stack captured when the error was created.
func (e *Error) Stack() string {
	return string(e.stack)
}

// Is reports whether target is an *Error with the same status and message.
// It lets callers match against prototype values such as
// apperror.NewAuthorization("Insufficient permissions").
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Message == t.Message
}

// From returns err as an *Error. Errors that are not already classified
// become non-operational 500s.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// StatusCode returns the HTTP status associated with err.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
