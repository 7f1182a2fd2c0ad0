package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

// ListAssetsByAshram returns the site's non-deleted assets.
func (s *Service) ListAssetsByAshram(ctx context.Context, ashramID string) ([]*domain.Asset, error) {
	id, err := validate.NonEmpty(ashramID, "Ashram ID")
	if err != nil {
		return nil, err
	}
	return s.assets.ListByAshramID(ctx, id)
}

// AssetQuery is a set of AND-combined filters; zero-valued fields are
// no-ops.
type AssetQuery struct {
	Category *domain.AssetCategory `json:"category,omitempty"`
	Status   *domain.AssetStatus   `json:"status,omitempty"`
	AshramID string                `json:"ashram_id,omitempty"`
	// Search matches a case-insensitive substring of name, tag, or owner.
	Search string `json:"search,omitempty"`
	// ReminderDueBefore matches assets with at least one incomplete
	// reminder due on or before the cutoff.
	ReminderDueBefore *time.Time `json:"reminder_due_before,omitempty"`
}

func (q AssetQuery) matches(asset *domain.Asset) bool {
	if q.Category != nil && asset.Category != *q.Category {
		return false
	}
	if q.Status != nil && asset.Status != *q.Status {
		return false
	}
	if q.AshramID != "" && asset.AshramID != q.AshramID {
		return false
	}
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(asset.Name), term) &&
			!strings.Contains(strings.ToLower(asset.AssetTag), term) &&
			!strings.Contains(strings.ToLower(asset.Owner), term) {
			return false
		}
	}
	if q.ReminderDueBefore != nil {
		due := false
		for _, reminder := range asset.Reminders {
			if !reminder.Completed && !reminder.DueDate.After(*q.ReminderDueBefore) {
				due = true
				break
			}
		}
		if !due {
			return false
		}
	}
	return true
}

// QueryAssets filters the non-deleted asset set; filter composition is
// exact set intersection.
func (s *Service) QueryAssets(ctx context.Context, query AssetQuery) ([]*domain.Asset, error) {
	if query.Category != nil {
		if _, err := validate.Enum(*query.Category, domain.AssetCategories(), "Asset category"); err != nil {
			return nil, err
		}
	}
	if query.Status != nil {
		if _, err := validate.Enum(*query.Status, domain.AssetStatuses(), "Asset status"); err != nil {
			return nil, err
		}
	}

	all, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Asset, 0, len(all))
	for _, asset := range all {
		if query.matches(asset) {
			out = append(out, asset)
		}
	}
	return out, nil
}

// UpcomingReminder pairs a due reminder with the identity of its asset.
type UpcomingReminder struct {
	AssetID   string          `json:"asset_id"`
	AssetName string          `json:"asset_name"`
	AssetTag  string          `json:"asset_tag"`
	AshramID  string          `json:"ashram_id"`
	Reminder  domain.Reminder `json:"reminder"`
}

type ReminderQuery struct {
	// AshramID limits the scan to one site; empty means all sites.
	AshramID  string
	DueBefore time.Time
}

// GetUpcomingReminders flattens all incomplete reminders due on or before
// the cutoff, sorted ascending by due date. Ties keep encounter order.
func (s *Service) GetUpcomingReminders(ctx context.Context, query ReminderQuery) ([]UpcomingReminder, error) {
	cutoff, err := validate.Date(query.DueBefore, "Reminder cutoff")
	if err != nil {
		return nil, err
	}

	var assets []*domain.Asset
	if query.AshramID != "" {
		assets, err = s.assets.ListByAshramID(ctx, query.AshramID)
	} else {
		assets, err = s.assets.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	var out []UpcomingReminder
	for _, asset := range assets {
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
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Reminder.DueDate.Before(out[j].Reminder.DueDate)
	})
	return out, nil
}
