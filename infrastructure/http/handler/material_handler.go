package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type MaterialHandler struct {
	materials inbound.MaterialUseCase
	logger    logger.Logger
}

func NewMaterialHandler(materials inbound.MaterialUseCase, log logger.Logger) *MaterialHandler {
	return &MaterialHandler{materials: materials, logger: log}
}

func (h *MaterialHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/materials")
	s.Handle("/requests/all", rt.protected(h.ListRequests)).Methods(http.MethodGet)
	s.Handle("/requests/create", rt.audited(entity.AuditActionCreate, "MaterialRequest", h.CreateRequest)).Methods(http.MethodPost)
	s.Handle("/requests/{id}", rt.audited(entity.AuditActionUpdate, "MaterialRequest", h.UpdateRequest)).Methods(http.MethodPut)
	s.Handle("/requests/{id}", rt.audited(entity.AuditActionDelete, "MaterialRequest", h.DeleteRequest)).Methods(http.MethodDelete)

	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Material", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Material", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Material", h.Delete)).Methods(http.MethodDelete)
}

func (h *MaterialHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.materials.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", materials)
}

func (h *MaterialHandler) Get(w http.ResponseWriter, r *http.Request) {
	material, err := h.materials.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", material)
}

func (h *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MaterialInput
	if !decodeJSON(w, r, &in) {
		return
	}

	material, err := h.materials.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Material created", material)
}

func (h *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MaterialInput
	if !decodeJSON(w, r, &in) {
		return
	}

	material, err := h.materials.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Material updated", material)
}

func (h *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.materials.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Material deleted", nil)
}

func (h *MaterialHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.materials.ListRequests(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", requests)
}

func (h *MaterialHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MaterialRequestInput
	if !decodeJSON(w, r, &in) {
		return
	}

	request, err := h.materials.CreateRequest(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Material request created", request)
}

func (h *MaterialHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MaterialRequestInput
	if !decodeJSON(w, r, &in) {
		return
	}

	request, err := h.materials.UpdateRequest(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Material request updated", request)
}

func (h *MaterialHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.materials.DeleteRequest(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Material request deleted", nil)
}
