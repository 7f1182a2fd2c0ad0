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

type AssetHandler struct {
	service *inventory.Service
}

func NewAssetHandler(service *inventory.Service) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	asset, err := h.service.AddAsset(r.Context(), req.Input(middleware.GetUserID(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	asset, err := h.service.FindAssetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	asset, err := h.service.UpdateAsset(r.Context(), req.Input(chi.URLParam(r, "id"), middleware.GetUserID(r.Context())))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, asset)
}

// List answers GET /assets with optional category, status, ashram_id,
// search, and due_before query filters, combined as an intersection.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := inventory.AssetQuery{
		AshramID: q.Get("ashram_id"),
		Search:   q.Get("search"),
	}
	if v := q.Get("category"); v != "" {
		category := domain.AssetCategory(v)
		query.Category = &category
	}
	if v := q.Get("status"); v != "" {
		status := domain.AssetStatus(v)
		query.Status = &status
	}
	if v := q.Get("due_before"); v != "" {
		cutoff, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_before timestamp"})
			return
		}
		query.ReminderDueBefore = &cutoff
	}

	assets, err := h.service.QueryAssets(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Archive(w http.ResponseWriter, r *http.Request) {
	asset, err := h.service.ArchiveAsset(r.Context(), inventory.ArchiveAssetInput{
		AssetID:    chi.URLParam(r, "id"),
		ArchivedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteAssetPermanently(r.Context(), inventory.DeleteAssetInput{
		AssetID:     chi.URLParam(r, "id"),
		RequestedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Message: "Asset deleted"})
}

func (h *AssetHandler) ScheduleReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errors := req.Validate(); len(errors) > 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: errors})
		return
	}

	asset, err := h.service.ScheduleReminder(r.Context(), inventory.ScheduleReminderInput{
		AssetID:     chi.URLParam(r, "id"),
		Type:        domain.ReminderType(req.Type),
		DueDate:     req.DueDate,
		Notes:       req.Notes,
		ScheduledBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, asset)
}

func (h *AssetHandler) CompleteReminder(w http.ResponseWriter, r *http.Request) {
	asset, err := h.service.MarkReminderComplete(r.Context(), inventory.MarkReminderCompleteInput{
		AssetID:     chi.URLParam(r, "id"),
		ReminderID:  chi.URLParam(r, "reminderID"),
		CompletedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// UpcomingReminders answers GET /reminders with an optional ashram_id and a
// due_before cutoff defaulting to thirty days out.
func (h *AssetHandler) UpcomingReminders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cutoff := time.Now().Add(inventory.DefaultReminderWindow)
	if v := q.Get("due_before"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_before timestamp"})
			return
		}
		cutoff = parsed
	}

	reminders, err := h.service.GetUpcomingReminders(r.Context(), inventory.ReminderQuery{
		AshramID:  q.Get("ashram_id"),
		DueBefore: cutoff,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reminders)
}
