package domain

import "time"

// Asset is a physical item owned by an ashram. The tag is assigned once at
// creation from a per-(site, category) counter; if the category is edited
// later a new tag is issued from the new category's counter and the old
// counter value is left as a gap.
type Asset struct {
	ID           string            `json:"id"`
	AshramID     string            `json:"ashram_id"`
	Name         string            `json:"name"`
	Category     AssetCategory     `json:"category"`
	AssetTag     string            `json:"asset_tag"`
	PurchaseDate time.Time         `json:"purchase_date"`
	Status       AssetStatus       `json:"status"`
	Owner        string            `json:"owner,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Reminders    []Reminder        `json:"reminders"`
	Documents    []Document        `json:"documents"`
	QRCode       string            `json:"qr_code"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	ArchivedAt   *time.Time        `json:"archived_at,omitempty"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty"`
}

// Reminder is a dated follow-up attached to an asset. CompletedAt is set on
// the first completion only.
type Reminder struct {
	ID          string       `json:"id"`
	Type        ReminderType `json:"type"`
	DueDate     time.Time    `json:"due_date"`
	Notes       string       `json:"notes,omitempty"`
	Completed   bool         `json:"completed"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// Document is a file reference attached to an asset. URL holds either an
// external link or an object-store key when uploaded through the proxy.
type Document struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	URL        string           `json:"url"`
	Category   DocumentCategory `json:"category"`
	UploadedAt time.Time        `json:"uploaded_at"`
}

// ReminderByID returns a pointer into the asset's reminder slice, or nil.
func (a *Asset) ReminderByID(id string) *Reminder {
	for i := range a.Reminders {
		if a.Reminders[i].ID == id {
			return &a.Reminders[i]
		}
	}
	return nil
}

// DocumentByID returns a pointer into the asset's document slice, or nil.
func (a *Asset) DocumentByID(id string) *Document {
	for i := range a.Documents {
		if a.Documents[i].ID == id {
			return &a.Documents[i]
		}
	}
	return nil
}

// Clone returns an independent deep copy.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	out := *a
	if a.Metadata != nil {
		out.Metadata = make(map[string]string, len(a.Metadata))
		for k, v := range a.Metadata {
			out.Metadata[k] = v
		}
	}
	out.Reminders = make([]Reminder, len(a.Reminders))
	for i, r := range a.Reminders {
		out.Reminders[i] = r
		if r.CompletedAt != nil {
			t := *r.CompletedAt
			out.Reminders[i].CompletedAt = &t
		}
	}
	out.Documents = append([]Document(nil), a.Documents...)
	if a.ArchivedAt != nil {
		t := *a.ArchivedAt
		out.ArchivedAt = &t
	}
	if a.DeletedAt != nil {
		t := *a.DeletedAt
		out.DeletedAt = &t
	}
	return &out
}
