package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-ride-hail/internal/app"
)

func TestRouteNotFound(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "unknown nested path", method: http.MethodGet, path: "/api/rides/unknown/deeper"},
		{name: "wrong method on public route", method: http.MethodGet, path: "/api/auth/login"},
		{name: "wrong method on protected route", method: http.MethodDelete, path: "/api/rides/history"},
		{name: "wrong method on admin route", method: http.MethodPost, path: "/api/admin/rides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, "", "")

			assertEnvelope(t, rec, http.StatusNotFound, app.MsgRouteNotFound, tt.method, tt.path)
		})
	}
}
