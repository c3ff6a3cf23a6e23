package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type ProjectHandler struct {
	projects inbound.ProjectUseCase
	logger   logger.Logger
}

func NewProjectHandler(projects inbound.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: log}
}

func (h *ProjectHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/projects")
	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Project", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Project", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Project", h.Delete)).Methods(http.MethodDelete)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	project, err := h.projects.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Project created", project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	project, err := h.projects.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Project updated", project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.projects.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Project deleted", nil)
}
