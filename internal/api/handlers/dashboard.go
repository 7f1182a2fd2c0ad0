package handlers

import (
	"net/http"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/api/middleware"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
)

type DashboardHandler struct {
	service *inventory.Service
}

func NewDashboardHandler(service *inventory.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// HeadOffice answers GET /dashboard with the cross-site aggregate. Filters
// mirror the per-site dashboard: category, status, due_before.
func (h *DashboardHandler) HeadOffice(w http.ResponseWriter, r *http.Request) {
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
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid due_before timestamp"})
			return
		}
		filters.DueBefore = cutoff
	}

	dashboard, err := h.service.GetHeadOfficeDashboard(r.Context(), inventory.GetHeadOfficeDashboardInput{
		Filters:     filters,
		RequestedBy: middleware.GetUserID(r.Context()),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
