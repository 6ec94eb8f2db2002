package api

import (
	"dmv/internal/service"
	"errors"
	"net/http"

	apperrors "dmv/internal/errors"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
}

func NewAdminAuthHandler(svc service.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, apperrors.ErrUnauthorized("Invalid credentials"))
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *AdminAuthHandler) CreateUserAdmin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.service.CreateAdmin(req.Email, req.Password); err != nil {
		writeError(w, apperrors.ErrBadRequest(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}
