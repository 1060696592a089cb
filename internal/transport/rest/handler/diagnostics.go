package handler

import (
	"net/http"

	"mmgp/internal/service"
)

// DiagnosticsHandler exposes the connection check
type DiagnosticsHandler struct {
	diagSvc *service.DiagnosticsService
}

// NewDiagnosticsHandler creates a new diagnostics handler
func NewDiagnosticsHandler(diagSvc *service.DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagSvc: diagSvc}
}

// Connection handles GET /v1/diagnostics/connection
//
// @Summary Ping the record store and cache
// @Tags diagnostics
// @Produce json
// @Success 200 {object} service.ConnectionReport
// @Failure 500 {object} service.ConnectionReport
// @Router /diagnostics/connection [get]
func (h *DiagnosticsHandler) Connection(w http.ResponseWriter, r *http.Request) {
	report := h.diagSvc.CheckConnection(r.Context())
	status := http.StatusOK
	if report.Status == "error" {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, report)
}
