package http

import (
	"net/http"

	"github.com/qrlogix/qrlogix-server/internal/utils"
)

// diagnostics serves the test endpoint. It always answers 200: connectivity
// problems are embedded in the report body, never surfaced as a failure.
func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.Report(r.Context())
	utils.WriteJSON(w, report, http.StatusOK)
}
