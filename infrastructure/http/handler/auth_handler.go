package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
	logger      logger.Logger
}

func NewAuthHandler(authUseCase inbound.AuthUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      log,
	}
}

// RegisterRoutes mounts /auth and /users. Register and login are public.
func (h *AuthHandler) RegisterRoutes(r *mux.Router, rt Routes) {
	var login http.Handler = http.HandlerFunc(h.Login)
	if rt.LoginThrottle != nil {
		login = rt.LoginThrottle(login)
	}

	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.Handle("/auth/login", login).Methods(http.MethodPost)
	r.Handle("/auth/me", rt.protected(h.Me)).Methods(http.MethodGet)
	r.Handle("/users", rt.protected(h.ListUsers)).Methods(http.MethodGet)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req inbound.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.authUseCase.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.Created(w, "User registered", res)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", res)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := actor(w, r)
	if !ok {
		return
	}

	user, err := h.authUseCase.Me(r.Context(), claims)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", user)
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authUseCase.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	response.OK(w, "success", users)
}
