// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// Stage is one step of a request pipeline. It returns the request to pass
// on, possibly with an enriched context, or an error that ends the
// pipeline.
type Stage func(r *http.Request) (*http.Request, error)

// gate runs stages in order in front of the wrapped handler. The first
// failing stage short-circuits the pipeline and its error goes to the
// error responder, so exactly one terminal outcome is produced per request:
// either the next handler runs or a failure envelope is written.
func (h *Handler) gate(stages ...Stage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current := r
			for _, stage := range stages {
				enriched, err := stage(current)
				if err != nil {
					h.respondError(w, r, err)
					return
				}
				current = enriched
			}

			next.ServeHTTP(w, current)
		})
	}
}
