package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeRetentionSweep = "assets:retention_sweep"
	TypeReminderScan   = "assets:reminder_scan"
)

// RetentionSweepPayload drives one pass over archived assets whose
// retention window has elapsed.
type RetentionSweepPayload struct {
	RetentionDays int `json:"retention_days"`
}

func NewRetentionSweepTask(payload RetentionSweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRetentionSweep, data, asynq.Queue("maintenance")), nil
}

// ReminderScanPayload drives one pass over reminders coming due within the
// window.
type ReminderScanPayload struct {
	WindowDays int `json:"window_days"`
}

func NewReminderScanTask(payload ReminderScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderScan, data), nil
}
