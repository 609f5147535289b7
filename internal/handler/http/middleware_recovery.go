package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ride-hail/internal/apperror"
	"github.com/MKhiriev/go-ride-hail/internal/logger"
)

// withRecovery turns a panic in a downstream handler into a 500 error
// envelope. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection as intended. If the handler already wrote its header the
// panic is only logged: a second status line cannot be sent.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := apperror.Internal(fmt.Errorf("panic: %v", rec))
			if rw.wroteHeader {
				logger.FromRequest(r).Error().
					Err(err).
					Int("status", rw.status).
					Str("stack", err.Stack()).
					Msg("panic after response was started")
				return
			}

			h.respondError(rw, r, err)
		}()

		next.ServeHTTP(rw, r)
	})
}
