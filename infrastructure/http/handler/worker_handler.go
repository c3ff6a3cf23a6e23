package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type WorkerHandler struct {
	workers inbound.WorkerUseCase
	logger  logger.Logger
}

func NewWorkerHandler(workers inbound.WorkerUseCase, log logger.Logger) *WorkerHandler {
	return &WorkerHandler{workers: workers, logger: log}
}

func (h *WorkerHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/workers")
	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Worker", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Worker", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Worker", h.Delete)).Methods(http.MethodDelete)
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workers.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", workers)
}

func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	worker, err := h.workers.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", worker)
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.WorkerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	worker, err := h.workers.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Worker created", worker)
}

func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.WorkerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	worker, err := h.workers.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Worker updated", worker)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.workers.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Worker deleted", nil)
}
