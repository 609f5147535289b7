// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-ride-hail/internal/app"
	"github.com/MKhiriev/go-ride-hail/internal/apperror"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router. A known path requested with an unsupported method
// is reported exactly like an unknown path: 404 "Route not found" in the
// error envelope, so callers cannot probe which routes exist.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, apperror.NewNotFound(app.MsgRouteNotFound))
}
