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

type CommunicationHandler struct {
	communication inbound.CommunicationUseCase
	logger        logger.Logger
}

func NewCommunicationHandler(communication inbound.CommunicationUseCase, log logger.Logger) *CommunicationHandler {
	return &CommunicationHandler{communication: communication, logger: log}
}

func (h *CommunicationHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	s := mount(r, "/communication")
	s.Handle("/messages", rt.protected(h.ListMessages)).Methods(http.MethodGet)
	s.Handle("/messages", rt.audited(entity.AuditActionCreate, "Message", h.SendMessage)).Methods(http.MethodPost)

	s.Handle("/requests", rt.protected(h.ListRequests)).Methods(http.MethodGet)
	s.Handle("/requests", rt.audited(entity.AuditActionCreate, "CommunicationRequest", h.CreateRequest)).Methods(http.MethodPost)
	s.Handle("/requests/{id}", rt.audited(entity.AuditActionUpdate, "CommunicationRequest", h.UpdateRequest)).Methods(http.MethodPut)
	s.Handle("/requests/{id}", rt.audited(entity.AuditActionDelete, "CommunicationRequest", h.DeleteRequest)).Methods(http.MethodDelete)
}

// ListMessages accepts conversationId and userId filters.
func (h *CommunicationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	messages, err := h.communication.ListMessages(r.Context(), outbound.MessageFilter{
		ConversationID: q.Get("conversationId"),
		UserID:         q.Get("userId"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", messages)
}

func (h *CommunicationHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.MessageInput
	if !decodeJSON(w, r, &in) {
		return
	}

	message, err := h.communication.SendMessage(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Message sent", message)
}

// ListRequests accepts estado and userId filters.
func (h *CommunicationHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	requests, err := h.communication.ListRequests(r.Context(), outbound.RequestFilter{
		Status:   q.Get("estado"),
		SenderID: q.Get("userId"),
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", requests)
}

func (h *CommunicationHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CommunicationRequestInput
	if !decodeJSON(w, r, &in) {
		return
	}

	request, err := h.communication.CreateRequest(r.Context(), claims, in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "Request created", request)
}

func (h *CommunicationHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	var in inbound.CommunicationRequestInput
	if !decodeJSON(w, r, &in) {
		return
	}

	request, err := h.communication.UpdateRequest(r.Context(), claims, pathParam(r, "id"), in)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Request updated", request)
}

func (h *CommunicationHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}
	if err := h.communication.DeleteRequest(r.Context(), claims, pathParam(r, "id")); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "Request deleted", nil)
}
