package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
)

func TestWithRecovery(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	t.Run("production", func(t *testing.T) {
		h := NewHandler(&service.Services{}, logger.Nop())

		rec := httptest.NewRecorder()
		h.withRecovery(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assertEnvelope(t, rec, http.StatusInternalServerError, app.MsgInternalServerError, http.MethodGet, "/boom")
	})

	t.Run("development", func(t *testing.T) {
		h := NewHandler(&service.Services{}, logger.Nop(), WithDevelopment(true))

		rec := httptest.NewRecorder()
		h.withRecovery(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		resp := decodeError(t, rec)
		assert.Equal(t, "panic: nil map write", resp.Error.Message)
		assert.NotEmpty(t, resp.Error.Stack)
	})
}

func TestWithRecovery_AbortHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	aborting := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecovery(aborting).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecovery_NoPanic(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	rec := httptest.NewRecorder()
	h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWithRecovery_PanicAfterHeaderWritten(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	partial := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late failure")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withRecovery(partial).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/late", nil))
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestWithRecovery_SharesWrappedWriter(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	rw := wrapResponseWriter(httptest.NewRecorder())
	h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rw.statusCode())
	assert.Positive(t, rw.size)
}
