package http

import (
	"fmt"
	"net/http"

	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/utils"
	"github.com/qrlogix/qrlogix-server/models"
)

// withRecover is the outer error boundary of every handler: any panic is
// logged and mapped to the generic 500 "Server error" envelope with the
// panic text in the error field, keeping the envelope contract even for
// bugs.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromRequest(r)
				log.Error().Any("panic", rec).Str("uri", r.RequestURI).Msg("recovered from panic in handler")

				utils.WriteJSON(w, models.ErrorResponse{
					Success: false,
					Message: msgServerError,
					Error:   fmt.Sprintf("%v", rec),
				}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
