package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-ride-hail/internal/logger"
	"github.com/MKhiriev/go-ride-hail/internal/service"
)

func TestWithTracing_PassesThrough(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	var span trace.Span
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span = trace.SpanFromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	h.withTracing(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotNil(t, span)
}
