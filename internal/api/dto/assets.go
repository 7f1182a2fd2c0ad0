package dto

import (
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
)

type ReminderRequest struct {
	Type    string    `json:"type"`
	DueDate time.Time `json:"due_date"`
	Notes   string    `json:"notes,omitempty"`
}

type DocumentLinkRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type CreateAssetRequest struct {
	AshramID     string                `json:"ashram_id"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	PurchaseDate time.Time             `json:"purchase_date"`
	Status       string                `json:"status,omitempty"`
	Owner        string                `json:"owner,omitempty"`
	Metadata     map[string]string     `json:"metadata,omitempty"`
	Reminders    []ReminderRequest     `json:"reminders,omitempty"`
	Documents    []DocumentLinkRequest `json:"documents,omitempty"`
}

func (r CreateAssetRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.AshramID == "" {
		errors["ashram_id"] = "Ashram ID is required"
	}
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	if r.Category == "" {
		errors["category"] = "Category is required"
	}
	if r.PurchaseDate.IsZero() {
		errors["purchase_date"] = "Purchase date is required"
	}
	return errors
}

func (r CreateAssetRequest) Input(actorID string) inventory.AddAssetInput {
	reminders := make([]inventory.ReminderInput, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		reminders = append(reminders, inventory.ReminderInput{
			Type:    domain.ReminderType(rem.Type),
			DueDate: rem.DueDate,
			Notes:   rem.Notes,
		})
	}
	documents := make([]inventory.DocumentInput, 0, len(r.Documents))
	for _, doc := range r.Documents {
		documents = append(documents, inventory.DocumentInput{
			Name:     doc.Name,
			URL:      doc.URL,
			Category: domain.DocumentCategory(doc.Category),
		})
	}
	return inventory.AddAssetInput{
		AshramID:     r.AshramID,
		Name:         r.Name,
		Category:     domain.AssetCategory(r.Category),
		PurchaseDate: r.PurchaseDate,
		Status:       domain.AssetStatus(r.Status),
		Owner:        r.Owner,
		Metadata:     r.Metadata,
		Reminders:    reminders,
		Documents:    documents,
		AddedBy:      actorID,
	}
}

type UpdateAssetRequest struct {
	Name         *string           `json:"name,omitempty"`
	Category     *string           `json:"category,omitempty"`
	PurchaseDate *time.Time        `json:"purchase_date,omitempty"`
	Status       *string           `json:"status,omitempty"`
	Owner        *string           `json:"owner,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

func (r UpdateAssetRequest) Input(assetID, actorID string) inventory.UpdateAssetInput {
	input := inventory.UpdateAssetInput{
		AssetID:   assetID,
		Name:      r.Name,
		Metadata:  r.Metadata,
		Owner:     r.Owner,
		UpdatedBy: actorID,
	}
	if r.Category != nil {
		category := domain.AssetCategory(*r.Category)
		input.Category = &category
	}
	if r.PurchaseDate != nil {
		input.PurchaseDate = r.PurchaseDate
	}
	if r.Status != nil {
		status := domain.AssetStatus(*r.Status)
		input.Status = &status
	}
	return input
}

type ScheduleReminderRequest struct {
	Type    string    `json:"type"`
	DueDate time.Time `json:"due_date"`
	Notes   string    `json:"notes,omitempty"`
}

func (r ScheduleReminderRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Type == "" {
		errors["type"] = "Type is required"
	}
	if r.DueDate.IsZero() {
		errors["due_date"] = "Due date is required"
	}
	return errors
}
