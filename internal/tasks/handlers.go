// Package tasks holds the background jobs run by the worker process: the
// nightly retention sweep that purges long-archived assets, and the
// reminder scan that surfaces follow-ups coming due. Both work straight
// against the asset repository; there is no acting user.
package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/repository"
)

type Handler struct {
	assets repository.AssetRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewHandler(assets repository.AssetRepository, logger *slog.Logger) *Handler {
	return &Handler{
		assets: assets,
		logger: logger,
		now:    time.Now,
	}
}

func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRetentionSweep, h.HandleRetentionSweep)
	mux.HandleFunc(TypeReminderScan, h.HandleReminderScan)
}

// HandleRetentionSweep soft-deletes every archived asset whose retention
// window has fully elapsed. The sweep is idempotent: deleted assets drop
// out of the listing and are not visited again.
func (h *Handler) HandleRetentionSweep(ctx context.Context, t *asynq.Task) error {
	var payload RetentionSweepPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if payload.RetentionDays <= 0 {
		return fmt.Errorf("retention sweep: invalid retention days %d", payload.RetentionDays)
	}

	assets, err := h.assets.List(ctx)
	if err != nil {
		return fmt.Errorf("listing assets: %w", err)
	}

	cutoff := h.now().Add(-time.Duration(payload.RetentionDays) * 24 * time.Hour)
	purged := 0
	for _, asset := range assets {
		if asset.Status != domain.StatusArchived || asset.ArchivedAt == nil {
			continue
		}
		if asset.ArchivedAt.After(cutoff) {
			continue
		}
		if err := h.assets.Delete(ctx, asset.ID); err != nil {
			return fmt.Errorf("purging asset %s: %w", asset.ID, err)
		}
		h.logger.Info("asset purged by retention sweep",
			"asset_id", asset.ID,
			"asset_tag", asset.AssetTag,
			"archived_at", asset.ArchivedAt,
		)
		purged++
	}

	h.logger.Info("retention sweep finished",
		"retention_days", payload.RetentionDays,
		"purged", purged,
	)
	return nil
}

// HandleReminderScan logs every incomplete reminder due within the window.
// Overdue reminders are logged at warning level. Delivery beyond the log is
// left to whatever tails it.
func (h *Handler) HandleReminderScan(ctx context.Context, t *asynq.Task) error {
	var payload ReminderScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if payload.WindowDays <= 0 {
		return fmt.Errorf("reminder scan: invalid window days %d", payload.WindowDays)
	}

	assets, err := h.assets.List(ctx)
	if err != nil {
		return fmt.Errorf("listing assets: %w", err)
	}

	now := h.now()
	cutoff := now.Add(time.Duration(payload.WindowDays) * 24 * time.Hour)
	due := 0
	for _, asset := range assets {
		for _, reminder := range asset.Reminders {
			if reminder.Completed || reminder.DueDate.After(cutoff) {
				continue
			}
			level := slog.LevelInfo
			if reminder.DueDate.Before(now) {
				level = slog.LevelWarn
			}
			h.logger.Log(ctx, level, "reminder due",
				"asset_id", asset.ID,
				"asset_tag", asset.AssetTag,
				"ashram_id", asset.AshramID,
				"reminder_id", reminder.ID,
				"type", reminder.Type,
				"due_date", reminder.DueDate,
			)
			due++
		}
	}

	h.logger.Info("reminder scan finished", "window_days", payload.WindowDays, "due", due)
	return nil
}
