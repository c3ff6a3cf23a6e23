package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type CrewHandler struct {
	crews  inbound.CrewUseCase
	logger logger.Logger
}

func NewCrewHandler(crews inbound.CrewUseCase, log logger.Logger) *CrewHandler {
	return &CrewHandler{crews: crews, logger: log}
}

// RegisterRoutes mounts /crews. Membership routes go first so that
// /crews/workers/{id} is not taken for a crew id. The add route names its
// variable crewId: the link id does not exist until the insert.
func (h *CrewHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/crews")
	s.Handle("/workers/{id}", rt.audited(entity.AuditActionDelete, "CrewWorker", h.RemoveWorker)).Methods(http.MethodDelete)
	s.Handle("/{crewId}/workers", rt.audited(entity.AuditActionCreate, "CrewWorker", h.AddWorker)).Methods(http.MethodPost)

	s.Handle("", rt.protected(h.List)).Methods(http.MethodGet)
	s.Handle("/{id}", rt.protected(h.Get)).Methods(http.MethodGet)
	s.Handle("", rt.audited(entity.AuditActionCreate, "Crew", h.Create)).Methods(http.MethodPost)
	s.Handle("/{id}", rt.audited(entity.AuditActionUpdate, "Crew", h.Update)).Methods(http.MethodPut)
	s.Handle("/{id}", rt.audited(entity.AuditActionDelete, "Crew", h.Delete)).Methods(http.MethodDelete)
}

func (h *CrewHandler) List(w http.ResponseWriter, r *http.Request) {
	crews, err := h.crews.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", crews)
}

func (h *CrewHandler) Get(w http.ResponseWriter, r *http.Request) {
	crew, err := h.crews.Get(r.Context(), pathParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", crew)
}

func (h *CrewHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CrewInput
	if !decodeJSON(w, r, &in) {
		return
	}

	crew, err := h.crews.Create(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Crew created", crew)
}

func (h *CrewHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CrewInput
	if !decodeJSON(w, r, &in) {
		return
	}

	crew, err := h.crews.Update(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Crew updated", crew)
}

func (h *CrewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.crews.Delete(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Crew deleted", nil)
}

func (h *CrewHandler) AddWorker(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CrewMemberInput
	if !decodeJSON(w, r, &in) {
		return
	}

	link, err := h.crews.AddWorker(r.Context(), claims, pathParam(r, "crewId"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Worker added to crew", link)
}

func (h *CrewHandler) RemoveWorker(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.crews.RemoveWorker(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Worker removed from crew", nil)
}
