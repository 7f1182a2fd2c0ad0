package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/api/middleware"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
)

type AshramHandler struct {
	service *inventory.Service
}

func NewAshramHandler(service *inventory.Service) *AshramHandler {
	return &AshramHandler{service: service}
}

func (h *AshramHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAshramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	ashram, err := h.service.CreateAshram(r.Context(), inventory.CreateAshramInput{
		Name:      req.Name,
		Location:  req.Location,
		CreatedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ashram)
}

func (h *AshramHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	assignment, err := h.service.AssignUserToAshram(r.Context(), inventory.AssignUserInput{
		UserID:      req.UserID,
		AshramID:    chi.URLParam(r, "id"),
		Roles:       req.DomainRoles(),
		RequestedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, assignment)
}

func (h *AshramHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.ListAssetsByAshram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *AshramHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	filters, err := dashboardFilters(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_before timestamp"})
		return
	}

	dashboard, err := h.service.GetAshramDashboard(r.Context(), inventory.GetAshramDashboardInput{
		AshramID:    chi.URLParam(r, "id"),
		Filters:     filters,
		RequestedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

func dashboardFilters(r *http.Request) (inventory.DashboardFilters, error) {
	var filters inventory.DashboardFilters
	q := r.URL.Query()

	if v := q.Get("category"); v != "" {
		category := domain.AssetCategory(v)
		filters.Category = &category
	}
	if v := q.Get("status"); v != "" {
		status := domain.AssetStatus(v)
		filters.Status = &status
	}
	if v := q.Get("due_before"); v != "" {
		cutoff, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filters, err
		}
		filters.DueBefore = cutoff
	}
	return filters, nil
}
