package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-hail/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, models.HealthResponse{Status: "ok", Build: h.buildInfo}, http.StatusOK)
}
