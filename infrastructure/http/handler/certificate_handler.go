package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type CertificateHandler struct {
	certificates inbound.CertificateUseCase
	logger       logger.Logger
}

func NewCertificateHandler(certificates inbound.CertificateUseCase, log logger.Logger) *CertificateHandler {
	return &CertificateHandler{certificates: certificates, logger: log}
}

func (h *CertificateHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/certificates")
	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Certificate", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Certificate", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Certificate", h.Delete)).Methods(http.MethodDelete)
	s.Handle("/{id}/worker/add", rt.audited(entity.AuditActionUpdate, "CertificateWorker", h.AddWorker)).Methods(http.MethodPost)
	s.Handle("/{id}/worker/remove", rt.audited(entity.AuditActionUpdate, "CertificateWorker", h.RemoveWorker)).Methods(http.MethodPost)
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificates.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", certificates)
}

func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	certificate, err := h.certificates.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", certificate)
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CertificateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	certificate, err := h.certificates.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Certificate created", certificate)
}

func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CertificateInput
	if !decodeJSON(w, r, &in) {
		return
	}

	certificate, err := h.certificates.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Certificate updated", certificate)
}

func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.certificates.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Certificate deleted", nil)
}

func (h *CertificateHandler) AddWorker(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CertificateWorkerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	certificate, err := h.certificates.AddWorker(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Worker added to certificate", certificate)
}

func (h *CertificateHandler) RemoveWorker(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CertificateWorkerInput
	if !decodeJSON(w, r, &in) {
		return
	}

	certificate, err := h.certificates.RemoveWorker(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Worker removed from certificate", certificate)
}
