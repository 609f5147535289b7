package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
	}{
		{"authentication", NewAuthentication("No token provided"), http.StatusUnauthorized},
		{"authorization", NewAuthorization("Insufficient permissions"), http.StatusForbidden},
		{"validation", NewValidation("Invalid ride type"), http.StatusBadRequest},
		{"not found", NewNotFound("Ride not found"), http.StatusNotFound},
		{"conflict", NewConflict("Ride already reviewed"), http.StatusConflict},
		{"generic", New(http.StatusGone, "gone"), http.StatusGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.True(t, tt.err.Operational)
			assert.NotEmpty(t, tt.err.Stack())
		})
	}
}

func TestInternal_IsNotOperational(t *testing.T) {
	cause := errors.New("db is down")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.False(t, err.Operational)
	assert.Equal(t, "db is down", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestInternal_NilCause(t *testing.T) {
	err := Internal(nil)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("token is malformed")
	err := Wrap(cause, http.StatusUnauthorized, "Invalid or expired token")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Invalid or expired token", err.Error())
}

func TestIs_MatchesByStatusAndMessage(t *testing.T) {
	err := fmt.Errorf("gate: %w", NewAuthorization("Insufficient permissions"))

	assert.ErrorIs(t, err, NewAuthorization("Insufficient permissions"))
	assert.NotErrorIs(t, err, NewAuthorization("something else"))
	assert.NotErrorIs(t, err, NewAuthentication("Insufficient permissions"))
}

func TestFrom(t *testing.T) {
	t.Run("classified error is returned as is", func(t *testing.T) {
		orig := NewValidation("bad")
		got := From(fmt.Errorf("wrapped: %w", orig))
		require.Same(t, orig, got)
	})

	t.Run("unclassified error becomes 500", func(t *testing.T) {
		got := From(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
		assert.False(t, got.Operational)
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusCode(NewAuthorization("x")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
}
