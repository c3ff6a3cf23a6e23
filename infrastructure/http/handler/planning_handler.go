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

type PlanningHandler struct {
	planning inbound.PlanningUseCase
	logger   logger.Logger
}

func NewPlanningHandler(planning inbound.PlanningUseCase, log logger.Logger) *PlanningHandler {
	return &PlanningHandler{planning: planning, logger: log}
}

func (h *PlanningHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/planning")
	s.Handle("/tasks", rt.protected(h.ListTasks)).Methods(http.MethodGet)
	s.Handle("/tasks", rt.audited(entity.AuditActionCreate, "Task", h.CreateTask)).Methods(http.MethodPost)
	s.Handle("/tasks/{id}", rt.audited(entity.AuditActionUpdate, "Task", h.UpdateTask)).Methods(http.MethodPut)
	s.Handle("/tasks/{id}", rt.audited(entity.AuditActionDelete, "Task", h.DeleteTask)).Methods(http.MethodDelete)

	s.Handle("/milestones", rt.protected(h.ListMilestones)).Methods(http.MethodGet)
	s.Handle("/milestones", rt.audited(entity.AuditActionCreate, "Milestone", h.CreateMilestone)).Methods(http.MethodPost)
	s.Handle("/milestones/{id}", rt.audited(entity.AuditActionUpdate, "Milestone", h.UpdateMilestone)).Methods(http.MethodPut)
	s.Handle("/milestones/{id}", rt.audited(entity.AuditActionDelete, "Milestone", h.DeleteMilestone)).Methods(http.MethodDelete)
}

// ListTasks accepts crewId and estado filters.
func (h *PlanningHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks, err := h.planning.ListTasks(r.Context(), outbound.TaskFilter{
		CrewID: q.Get("crewId"),
		Status: q.Get("estado"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", tasks)
}

func (h *PlanningHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.TaskInput
	if !decodeJSON(w, r, &in) {
		return
	}

	task, err := h.planning.CreateTask(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Task created", task)
}

func (h *PlanningHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.TaskInput
	if !decodeJSON(w, r, &in) {
		return
	}

	task, err := h.planning.UpdateTask(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Task updated", task)
}

func (h *PlanningHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.planning.DeleteTask(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Task deleted", nil)
}

// ListMilestones accepts projectId and estado filters.
func (h *PlanningHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	milestones, err := h.planning.ListMilestones(r.Context(), outbound.MilestoneFilter{
		ProjectID: q.Get("projectId"),
		Status:    q.Get("estado"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", milestones)
}

func (h *PlanningHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MilestoneInput
	if !decodeJSON(w, r, &in) {
		return
	}

	milestone, err := h.planning.CreateMilestone(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Milestone created", milestone)
}

func (h *PlanningHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MilestoneInput
	if !decodeJSON(w, r, &in) {
		return
	}

	milestone, err := h.planning.UpdateMilestone(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Milestone updated", milestone)
}

func (h *PlanningHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.planning.DeleteMilestone(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Milestone deleted", nil)
}
