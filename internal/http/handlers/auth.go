package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// AuthHandler serves registration, login and profile endpoints.
type AuthHandler struct {
	uc     accountUsecase
	logger logx.Logger
}

// NewAuthHandler wires an account usecase into HTTP handlers.
func NewAuthHandler(logger logx.Logger, uc accountUsecase) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{uc: uc, logger: logger}
}

func (h *AuthHandler) role(w http.ResponseWriter, r *http.Request) (domain.Role, bool) {
	role := domain.Role(chi.URLParam(r, "role"))
	if !role.Registrable() {
		writeError(h.logger, w, r, http.StatusNotFound, "unknown role")
		return "", false
	}
	return role, true
}

// Register handles POST /auth/{role}/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	role, ok := h.role(w, r)
	if !ok {
		return
	}
	var req registerRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.Register(r.Context(), role, req.toInput())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, authResponse{
		Message: "registered successfully",
		Token:   res.Token,
		User:    res.Profile,
	})
}

// Login handles POST /auth/{role}/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	role, ok := h.role(w, r)
	if !ok {
		return
	}
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.Login(r.Context(), role, req.Email, req.Password)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, authResponse{
		Message: "login successful",
		Token:   res.Token,
		User:    res.Profile,
	})
}

// Profile handles GET /auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.logger, w, r)
	if !ok {
		return
	}
	prof, err := h.uc.Profile(r.Context(), p)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profileResponse{User: prof})
}
