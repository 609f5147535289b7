package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
)

type stageKey struct{}

func TestGate_RunsStagesInOrder(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	var order []string
	stage := func(name string) Stage {
		return func(r *http.Request) (*http.Request, error) {
			order = append(order, name)
			return r.WithContext(context.WithValue(r.Context(), stageKey{}, name)), nil
		}
	}

	var seen any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context().Value(stageKey{})
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.gate(stage("first"), stage("second"))(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "second", seen, "next must receive the request enriched by the last stage")
}

func TestGate_FirstFailureShortCircuits(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	secondCalled, nextCalled := false, false
	failing := func(r *http.Request) (*http.Request, error) {
		return nil, apperror.NewAuthorization("nope")
	}
	second := func(r *http.Request) (*http.Request, error) {
		secondCalled = true
		return r, nil
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	rec := httptest.NewRecorder()
	h.gate(failing, second)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/thing", nil))

	assert.False(t, secondCalled)
	assert.False(t, nextCalled)
	assertEnvelope(t, rec, http.StatusForbidden, "nope", http.MethodDelete, "/api/thing")
}

func TestGate_NoStages(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.gate()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestGate_UnclassifiedErrorIs500(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	failing := func(r *http.Request) (*http.Request, error) {
		return nil, errors.New("db connection reset")
	}

	rec := httptest.NewRecorder()
	h.gate(failing)(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rec).Error.Message)
}
