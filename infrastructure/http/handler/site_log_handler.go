package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type SiteLogHandler struct {
	logs   inbound.SiteLogUseCase
	logger logger.Logger
}

func NewSiteLogHandler(logs inbound.SiteLogUseCase, log logger.Logger) *SiteLogHandler {
	return &SiteLogHandler{logs: logs, logger: log}
}

func (h *SiteLogHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/logs")
	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Log", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Log", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Log", h.Delete)).Methods(http.MethodDelete)
}

// List accepts crewId and projectId filters.
func (h *SiteLogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, err := h.logs.List(r.Context(), outbound.SiteLogFilter{
		CrewID:    q.Get("crewId"),
		ProjectID: q.Get("projectId"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", logs)
}

func (h *SiteLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.logs.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", entry)
}

func (h *SiteLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.SiteLogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	entry, err := h.logs.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Log created", entry)
}

func (h *SiteLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.SiteLogInput
	if !decodeJSON(w, r, &in) {
		return
	}

	entry, err := h.logs.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Log updated", entry)
}

func (h *SiteLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.logs.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Log deleted", nil)
}
