package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrTokenNotFound  = errors.New("no stored token, please log in")
	ErrMissingToken   = errors.New("server response carries no token")
	ErrInvalidBaseURL = errors.New("invalid api url")
)
