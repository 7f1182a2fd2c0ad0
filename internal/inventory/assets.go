package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

// DefaultRetentionDays is the cooling-off period between archiving an asset
// and being allowed to purge it.
const DefaultRetentionDays = 30

type ReminderInput struct {
	Type      domain.ReminderType
	DueDate   time.Time
	Notes     string
	Completed bool
}

type DocumentInput struct {
	Name     string
	URL      string
	Category domain.DocumentCategory
}

type AddAssetInput struct {
	AshramID     string
	Name         string
	Category     domain.AssetCategory
	PurchaseDate time.Time
	Status       domain.AssetStatus
	Owner        string
	Metadata     map[string]string
	Reminders    []ReminderInput
	Documents    []DocumentInput
	AddedBy      string
}

// AddAsset registers a new asset under a site. The actor must be assigned
// to the site (any role). Every scalar and sub-entity is validated before
// anything is written; the tag and QR payload are generated here and never
// change unless the category is edited later.
func (s *Service) AddAsset(ctx context.Context, input AddAssetInput) (*domain.Asset, error) {
	actor, err := s.requireUser(ctx, input.AddedBy)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignment(ctx, actor.ID, input.AshramID); err != nil {
		return nil, err
	}
	ashram, err := s.requireAshram(ctx, input.AshramID)
	if err != nil {
		return nil, err
	}

	name, err := validate.NonEmpty(input.Name, "Asset name")
	if err != nil {
		return nil, err
	}
	category, err := validate.Enum(input.Category, domain.AssetCategories(), "Asset category")
	if err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = domain.StatusActive
	}
	if status, err = validate.Enum(status, domain.AssetStatuses(), "Asset status"); err != nil {
		return nil, err
	}
	purchaseDate, err := validate.Date(input.PurchaseDate, "Purchase date")
	if err != nil {
		return nil, err
	}
	owner := input.Owner
	if owner != "" {
		if owner, err = validate.NonEmpty(owner, "Owner"); err != nil {
			return nil, err
		}
	}

	reminders := make([]domain.Reminder, 0, len(input.Reminders))
	for _, r := range input.Reminders {
		reminder, err := s.buildReminder(r)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, *reminder)
	}

	documents := make([]domain.Document, 0, len(input.Documents))
	for _, d := range input.Documents {
		document, err := s.buildDocument(d)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *document)
	}

	assetTag := s.nextAssetTag(ashram, category)
	qrCode, err := s.generateQRCode(ashram.ID, name, assetTag, category)
	if err != nil {
		return nil, err
	}

	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	asset, err := s.assets.Create(ctx, &domain.Asset{
		ID:           uuid.NewString(),
		AshramID:     ashram.ID,
		Name:         name,
		Category:     category,
		AssetTag:     assetTag,
		PurchaseDate: purchaseDate,
		Status:       status,
		Owner:        owner,
		Metadata:     metadata,
		Reminders:    reminders,
		Documents:    documents,
		QRCode:       qrCode,
		CreatedBy:    actor.ID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("asset added",
		"asset_id", asset.ID,
		"ashram_id", asset.AshramID,
		"asset_tag", asset.AssetTag,
	)
	return asset, nil
}

// FindAssetByID resolves an asset or fails with NotFoundError.
func (s *Service) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	if _, err := validate.NonEmpty(assetID, "Asset ID"); err != nil {
		return nil, err
	}
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}
	return asset, nil
}

type UpdateAssetInput struct {
	AssetID      string
	Name         *string
	Category     *domain.AssetCategory
	PurchaseDate *time.Time
	Status       *domain.AssetStatus
	Owner        *string
	Metadata     map[string]string
	UpdatedBy    string
}

// UpdateAsset edits an asset's scalar fields. The actor must be assigned to
// the asset's site. Changing the category reissues the tag from a freshly
// incremented counter for the new category and regenerates the QR payload;
// the old tag is retired and its counter value is never reused.
func (s *Service) UpdateAsset(ctx context.Context, input UpdateAssetInput) (*domain.Asset, error) {
	actor, err := s.requireUser(ctx, input.UpdatedBy)
	if err != nil {
		return nil, err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignment(ctx, actor.ID, asset.AshramID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validate.NonEmpty(*input.Name, "Asset name")
		if err != nil {
			return nil, err
		}
		asset.Name = name
	}
	if input.PurchaseDate != nil {
		purchaseDate, err := validate.Date(*input.PurchaseDate, "Purchase date")
		if err != nil {
			return nil, err
		}
		asset.PurchaseDate = purchaseDate
	}
	if input.Status != nil {
		status, err := validate.Enum(*input.Status, domain.AssetStatuses(), "Asset status")
		if err != nil {
			return nil, err
		}
		asset.Status = status
	}
	if input.Owner != nil {
		owner := *input.Owner
		if owner != "" {
			if owner, err = validate.NonEmpty(owner, "Owner"); err != nil {
				return nil, err
			}
		}
		asset.Owner = owner
	}
	if input.Metadata != nil {
		asset.Metadata = input.Metadata
	}

	retagged := false
	if input.Category != nil && *input.Category != asset.Category {
		category, err := validate.Enum(*input.Category, domain.AssetCategories(), "Asset category")
		if err != nil {
			return nil, err
		}
		ashram, err := s.requireAshram(ctx, asset.AshramID)
		if err != nil {
			return nil, err
		}
		asset.Category = category
		asset.AssetTag = s.nextAssetTag(ashram, category)
		qrCode, err := s.generateQRCode(ashram.ID, asset.Name, asset.AssetTag, category)
		if err != nil {
			return nil, err
		}
		asset.QRCode = qrCode
		retagged = true
	}

	updated, err := s.assets.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}

	s.logger.Info("asset updated", "asset_id", updated.ID, "retagged", retagged)
	return updated, nil
}

type ScheduleReminderInput struct {
	AssetID     string
	Type        domain.ReminderType
	DueDate     time.Time
	Notes       string
	ScheduledBy string
}

// ScheduleReminder appends a reminder to an existing asset. The actor must
// be assigned to the asset's site.
func (s *Service) ScheduleReminder(ctx context.Context, input ScheduleReminderInput) (*domain.Asset, error) {
	actor, err := s.requireUser(ctx, input.ScheduledBy)
	if err != nil {
		return nil, err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignment(ctx, actor.ID, asset.AshramID); err != nil {
		return nil, err
	}

	reminder, err := s.buildReminder(ReminderInput{
		Type:    input.Type,
		DueDate: input.DueDate,
		Notes:   input.Notes,
	})
	if err != nil {
		return nil, err
	}

	asset.Reminders = append(asset.Reminders, *reminder)
	updated, err := s.assets.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}
	return updated, nil
}

type AttachDocumentInput struct {
	AssetID    string
	Name       string
	URL        string
	Category   domain.DocumentCategory
	AttachedBy string
}

// AttachDocument appends a document reference to an existing asset. The
// actor must be assigned to the asset's site.
func (s *Service) AttachDocument(ctx context.Context, input AttachDocumentInput) (*domain.Asset, error) {
	actor, err := s.requireUser(ctx, input.AttachedBy)
	if err != nil {
		return nil, err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}
	if err := s.requireAssignment(ctx, actor.ID, asset.AshramID); err != nil {
		return nil, err
	}

	document, err := s.buildDocument(DocumentInput{
		Name:     input.Name,
		URL:      input.URL,
		Category: input.Category,
	})
	if err != nil {
		return nil, err
	}

	asset.Documents = append(asset.Documents, *document)
	updated, err := s.assets.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}
	return updated, nil
}

type MarkReminderCompleteInput struct {
	AssetID     string
	ReminderID  string
	CompletedBy string
}

// MarkReminderComplete completes a reminder. The actor need only exist; no
// role or assignment check applies here. Completing an already-complete
// reminder is a no-op returning the asset unchanged, so CompletedAt keeps
// its original value.
func (s *Service) MarkReminderComplete(ctx context.Context, input MarkReminderCompleteInput) (*domain.Asset, error) {
	if _, err := s.requireUser(ctx, input.CompletedBy); err != nil {
		return nil, err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	reminder := asset.ReminderByID(input.ReminderID)
	if reminder == nil {
		return nil, &NotFoundError{Resource: "reminder"}
	}
	if reminder.Completed {
		return asset, nil
	}

	now := s.now()
	reminder.Completed = true
	reminder.CompletedAt = &now

	updated, err := s.assets.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}
	return updated, nil
}

type ArchiveAssetInput struct {
	AssetID    string
	ArchivedBy string
}

// ArchiveAsset moves an asset to ARCHIVED and stamps ArchivedAt. Only ADMIN
// or HEAD_OFFICE actors may archive. Archiving an already-archived asset
// returns it unchanged.
func (s *Service) ArchiveAsset(ctx context.Context, input ArchiveAssetInput) (*domain.Asset, error) {
	actor, err := s.requireUser(ctx, input.ArchivedBy)
	if err != nil {
		return nil, err
	}
	if err := s.requireAnyRole(actor, domain.RoleAdmin, domain.RoleHeadOffice); err != nil {
		return nil, err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	if asset.Status == domain.StatusArchived {
		return asset, nil
	}

	now := s.now()
	asset.Status = domain.StatusArchived
	asset.ArchivedAt = &now

	updated, err := s.assets.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "asset"}
	}

	s.logger.Info("asset archived", "asset_id", updated.ID)
	return updated, nil
}

type DeleteAssetInput struct {
	AssetID       string
	RequestedBy   string
	RetentionDays int
}

// DeleteAssetPermanently soft-deletes an asset once its retention window
// has elapsed. Two-phase disposal: the asset must already be ARCHIVED, and
// at least RetentionDays must have passed since ArchivedAt. Only ADMIN or
// HEAD_OFFICE actors may purge.
func (s *Service) DeleteAssetPermanently(ctx context.Context, input DeleteAssetInput) error {
	actor, err := s.requireUser(ctx, input.RequestedBy)
	if err != nil {
		return err
	}
	if err := s.requireAnyRole(actor, domain.RoleAdmin, domain.RoleHeadOffice); err != nil {
		return err
	}
	asset, err := s.FindAssetByID(ctx, input.AssetID)
	if err != nil {
		return err
	}

	if asset.Status != domain.StatusArchived || asset.ArchivedAt == nil {
		return &PreconditionError{Message: "asset must be archived before deletion"}
	}

	days := input.RetentionDays
	if days == 0 {
		days = DefaultRetentionDays
	}
	if days, err = validate.PositiveInt(days, "Retention days"); err != nil {
		return err
	}

	cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	if asset.ArchivedAt.After(cutoff) {
		return &PreconditionError{Message: "asset retention period has not elapsed"}
	}

	if err := s.assets.Delete(ctx, asset.ID); err != nil {
		return err
	}

	s.logger.Info("asset purged", "asset_id", asset.ID, "asset_tag", asset.AssetTag)
	return nil
}

func (s *Service) buildReminder(input ReminderInput) (*domain.Reminder, error) {
	reminderType, err := validate.Enum(input.Type, domain.ReminderTypes(), "Reminder type")
	if err != nil {
		return nil, err
	}
	dueDate, err := validate.Date(input.DueDate, "Reminder due date")
	if err != nil {
		return nil, err
	}
	notes := input.Notes
	if notes != "" {
		if notes, err = validate.NonEmpty(notes, "Reminder notes"); err != nil {
			return nil, err
		}
	}
	reminder := &domain.Reminder{
		ID:        uuid.NewString(),
		Type:      reminderType,
		DueDate:   dueDate,
		Notes:     notes,
		Completed: input.Completed,
	}
	if input.Completed {
		now := s.now()
		reminder.CompletedAt = &now
	}
	return reminder, nil
}

func (s *Service) buildDocument(input DocumentInput) (*domain.Document, error) {
	name, err := validate.NonEmpty(input.Name, "Document name")
	if err != nil {
		return nil, err
	}
	url, err := validate.NonEmpty(input.URL, "Document URL")
	if err != nil {
		return nil, err
	}
	category, err := validate.Enum(input.Category, domain.DocumentCategories(), "Document category")
	if err != nil {
		return nil, err
	}
	return &domain.Document{
		ID:         uuid.NewString(),
		Name:       name,
		URL:        url,
		Category:   category,
		UploadedAt: s.now(),
	}, nil
}
