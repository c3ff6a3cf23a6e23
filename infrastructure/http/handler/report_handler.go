package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

// ReportHandler serves read-only aggregates.
type ReportHandler struct {
	reports inbound.ReportUseCase
	logger  logger.Logger
}

func NewReportHandler(reports inbound.ReportUseCase, log logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, logger: log}
}

func (h *ReportHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/reports")
	s.Handle("/projects", rt.protected(h.Projects)).Methods(http.MethodGet)
	s.Handle("/projects/{projectId}", rt.protected(h.Project)).Methods(http.MethodGet)
	s.Handle("/workers/{workerId}", rt.protected(h.Worker)).Methods(http.MethodGet)
	s.Handle("/inventory", rt.protected(h.Inventory)).Methods(http.MethodGet)
}

func (h *ReportHandler) Projects(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reports.Projects(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", summaries)
}

func (h *ReportHandler) Project(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Project(r.Context(), pathParam(r, "projectId"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", report)
}

func (h *ReportHandler) Worker(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Worker(r.Context(), pathParam(r, "workerId"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", report)
}

func (h *ReportHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Inventory(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", report)
}
