package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mmgp/internal/service"
	"mmgp/internal/transport/rest/middleware"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Get handles GET /v1/responses/{id}/report
//
// @Summary Printable result page
// @Tags responses
// @Produce html
// @Produce plain
// @Security BearerAuth
// @Param id path string true "response id"
// @Param format query string false "md for Markdown"
// @Success 200 {string} string
// @Router /responses/{id}/report [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	actor := middleware.GetActor(r.Context())

	var (
		body        string
		err         error
		contentType string
	)
	if r.URL.Query().Get("format") == "md" {
		body, err = h.reportSvc.Markdown(r.Context(), id, actor)
		contentType = "text/markdown; charset=utf-8"
	} else {
		body, err = h.reportSvc.HTML(r.Context(), id, actor)
		contentType = "text/html; charset=utf-8"
	}
	if err != nil {
		historyError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
