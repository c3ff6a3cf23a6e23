package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type AuditHandler struct {
	audit  inbound.AuditUseCase
	logger logger.Logger
}

func NewAuditHandler(audit inbound.AuditUseCase, log logger.Logger) *AuditHandler {
	return &AuditHandler{audit: audit, logger: log}
}

func (h *AuditHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/audit")
	s.Handle("", rt.protected(h.Search)).Methods(http.MethodGet)
	s.Handle("/entity/{entity}/{entityId}", rt.protected(h.ByEntity)).Methods(http.MethodGet)
	s.Handle("/statistics/summary", rt.protected(h.Statistics)).Methods(http.MethodGet)
}

// Search filters by entity, entityId, userId, projectId, action and the last
// days, newest first.
func (h *AuditHandler) Search(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	q := r.URL.Query()
	records, err := h.audit.Search(r.Context(), inbound.AuditQuery{
		EntityKind: q.Get("entity"),
		EntityID:   q.Get("entityId"),
		ActorID:    q.Get("userId"),
		ProjectID:  q.Get("projectId"),
		Action:     q.Get("action"),
		Days:       days,
		Limit:      limit,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", records)
}

func (h *AuditHandler) ByEntity(w http.ResponseWriter, r *http.Request) {
	records, err := h.audit.ByEntity(r.Context(), pathParam(r, "entity"), pathParam(r, "entityId"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", records)
}

func (h *AuditHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	stats, err := h.audit.Statistics(r.Context(), r.URL.Query().Get("projectId"), days)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", stats)
}
