package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/auth"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
)

type AuthHandler struct {
	service    *inventory.Service
	jwtService *auth.JWTService
}

func NewAuthHandler(service *inventory.Service, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{service: service, jwtService: jwtService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	user, err := h.service.RegisterUser(r.Context(), inventory.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Roles:       req.DomainRoles(),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	session, err := h.service.Login(r.Context(), inventory.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.jwtService.GenerateToken(session)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token:  token,
		UserID: session.UserID,
		Roles:  session.Roles,
	})
}
