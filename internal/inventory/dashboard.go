package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

// DefaultReminderWindow is the dashboard lookahead for upcoming reminders
// when the caller does not give a cutoff.
const DefaultReminderWindow = 30 * 24 * time.Hour

// DashboardFilters narrows the asset set a dashboard aggregates over.
// Archived assets are excluded unless a status filter asks for them;
// soft-deleted assets never appear.
type DashboardFilters struct {
	Category *domain.AssetCategory `json:"category,omitempty"`
	Status   *domain.AssetStatus   `json:"status,omitempty"`
	// DueBefore is the upcoming-reminder cutoff; zero means now plus the
	// default window.
	DueBefore time.Time `json:"due_before,omitempty"`
}

// AshramDashboard summarizes one site's inventory.
type AshramDashboard struct {
	AshramID          string                       `json:"ashram_id"`
	AshramName        string                       `json:"ashram_name"`
	TotalAssets       int                          `json:"total_assets"`
	AssetsByCategory  map[domain.AssetCategory]int `json:"assets_by_category"`
	UpcomingReminders []UpcomingReminder           `json:"upcoming_reminders"`
}

// AshramSummary is one row of the head-office per-site breakdown.
type AshramSummary struct {
	AshramID   string `json:"ashram_id"`
	Name       string `json:"name"`
	AssetCount int    `json:"asset_count"`
}

// HeadOfficeDashboard aggregates inventory across every site and echoes
// back the filters that were applied.
type HeadOfficeDashboard struct {
	TotalAshrams      int                          `json:"total_ashrams"`
	TotalAssets       int                          `json:"total_assets"`
	AssetsByCategory  map[domain.AssetCategory]int `json:"assets_by_category"`
	Ashrams           []AshramSummary              `json:"ashrams"`
	UpcomingReminders []UpcomingReminder           `json:"upcoming_reminders"`
	Filters           DashboardFilters             `json:"filters"`
}

func (f DashboardFilters) cutoff(now time.Time) time.Time {
	if f.DueBefore.IsZero() {
		return now.Add(DefaultReminderWindow)
	}
	return f.DueBefore
}

func (f DashboardFilters) includes(asset *domain.Asset) bool {
	if f.Category != nil && asset.Category != *f.Category {
		return false
	}
	if f.Status != nil {
		return asset.Status == *f.Status
	}
	return asset.Status != domain.StatusArchived
}

type GetAshramDashboardInput struct {
	AshramID    string
	Filters     DashboardFilters
	RequestedBy string
}

// GetAshramDashboard summarizes one site. The actor must be assigned to the
// site or hold ADMIN or HEAD_OFFICE.
func (s *Service) GetAshramDashboard(ctx context.Context, input GetAshramDashboardInput) (*AshramDashboard, error) {
	actor, err := s.requireUser(ctx, input.RequestedBy)
	if err != nil {
		return nil, err
	}
	ashram, err := s.requireAshram(ctx, input.AshramID)
	if err != nil {
		return nil, err
	}
	if !actor.HasAnyRole(domain.RoleAdmin, domain.RoleHeadOffice) {
		if err := s.requireAssignment(ctx, actor.ID, ashram.ID); err != nil {
			return nil, err
		}
	}

	assets, err := s.assets.ListByAshramID(ctx, ashram.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &AshramDashboard{
		AshramID:         ashram.ID,
		AshramName:       ashram.Name,
		AssetsByCategory: make(map[domain.AssetCategory]int),
	}
	cutoff := input.Filters.cutoff(s.now())
	for _, asset := range assets {
		if !input.Filters.includes(asset) {
			continue
		}
		dashboard.TotalAssets++
		dashboard.AssetsByCategory[asset.Category]++
		dashboard.UpcomingReminders = append(dashboard.UpcomingReminders, dueReminders(asset, cutoff)...)
	}
	sortUpcoming(dashboard.UpcomingReminders)
	return dashboard, nil
}

type GetHeadOfficeDashboardInput struct {
	Filters     DashboardFilters
	RequestedBy string
}

// GetHeadOfficeDashboard aggregates across all sites. The actor must hold
// ADMIN or HEAD_OFFICE.
func (s *Service) GetHeadOfficeDashboard(ctx context.Context, input GetHeadOfficeDashboardInput) (*HeadOfficeDashboard, error) {
	actor, err := s.requireUser(ctx, input.RequestedBy)
	if err != nil {
		return nil, err
	}
	if err := s.requireAnyRole(actor, domain.RoleAdmin, domain.RoleHeadOffice); err != nil {
		return nil, err
	}

	ashrams, err := s.ashrams.List(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &HeadOfficeDashboard{
		TotalAshrams:     len(ashrams),
		AssetsByCategory: make(map[domain.AssetCategory]int),
		Filters:          input.Filters,
	}

	counts := make(map[string]int, len(ashrams))
	cutoff := input.Filters.cutoff(s.now())
	for _, asset := range assets {
		if !input.Filters.includes(asset) {
			continue
		}
		dashboard.TotalAssets++
		dashboard.AssetsByCategory[asset.Category]++
		counts[asset.AshramID]++
		dashboard.UpcomingReminders = append(dashboard.UpcomingReminders, dueReminders(asset, cutoff)...)
	}
	sortUpcoming(dashboard.UpcomingReminders)

	dashboard.Ashrams = make([]AshramSummary, 0, len(ashrams))
	for _, ashram := range ashrams {
		dashboard.Ashrams = append(dashboard.Ashrams, AshramSummary{
			AshramID:   ashram.ID,
			Name:       ashram.Name,
			AssetCount: counts[ashram.ID],
		})
	}
	return dashboard, nil
}

func dueReminders(asset *domain.Asset, cutoff time.Time) []UpcomingReminder {
	var out []UpcomingReminder
	for _, reminder := range asset.Reminders {
		if reminder.Completed || reminder.DueDate.After(cutoff) {
			continue
		}
		out = append(out, UpcomingReminder{
			AssetID:   asset.ID,
			AssetName: asset.Name,
			AssetTag:  asset.AssetTag,
			AshramID:  asset.AshramID,
			Reminder:  reminder,
		})
	}
	return out
}

func sortUpcoming(reminders []UpcomingReminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Reminder.DueDate.Before(reminders[j].Reminder.DueDate)
	})
}
