package gormrepo

import (
	"time"

	"gorm.io/gorm"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

// Record types mirror the domain entities column by column. Slice and map
// fields are stored as JSON through gorm's serializer so the same schema
// works on postgres (jsonb) and sqlite (text affinity). Soft delete on
// assets is an explicit nullable column, not gorm.DeletedAt: direct lookups
// must still resolve deleted rows.

type userRecord struct {
	ID           string        `gorm:"primaryKey"`
	Email        string        `gorm:"uniqueIndex;not null"`
	DisplayName  string        `gorm:"not null"`
	PasswordHash string        `gorm:"not null"`
	Roles        []domain.Role `gorm:"serializer:json;type:jsonb"`
	AshramIDs    []string      `gorm:"serializer:json;type:jsonb"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

type ashramRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Location  string
	UserIDs   []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ashramRecord) TableName() string { return "ashrams" }

type assignmentRecord struct {
	ID        string        `gorm:"primaryKey"`
	UserID    string        `gorm:"index;not null"`
	AshramID  string        `gorm:"index;not null"`
	Roles     []domain.Role `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (assignmentRecord) TableName() string { return "assignments" }

type assetRecord struct {
	ID           string                `gorm:"primaryKey"`
	AshramID     string                `gorm:"index;not null"`
	Name         string                `gorm:"not null"`
	Category     domain.AssetCategory  `gorm:"index;not null"`
	AssetTag     string                `gorm:"uniqueIndex;not null"`
	PurchaseDate time.Time
	Status       domain.AssetStatus `gorm:"index;not null"`
	Owner        string
	Metadata     map[string]string `gorm:"serializer:json;type:jsonb"`
	Reminders    []domain.Reminder `gorm:"serializer:json;type:jsonb"`
	Documents    []domain.Document `gorm:"serializer:json;type:jsonb"`
	QRCode       string
	CreatedBy    string `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ArchivedAt   *time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

func (assetRecord) TableName() string { return "assets" }

// AutoMigrate creates or updates the four tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRecord{},
		&ashramRecord{},
		&assignmentRecord{},
		&assetRecord{},
	)
}

func newUserRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Roles:        append([]domain.Role(nil), u.Roles...),
		AshramIDs:    append([]string(nil), u.AshramIDs...),
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *userRecord) toDomain() *domain.User {
	user := &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PasswordHash: r.PasswordHash,
		Roles:        r.Roles,
		AshramIDs:    r.AshramIDs,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.LastLoginAt != nil {
		t := *r.LastLoginAt
		user.LastLoginAt = &t
	}
	return user
}

func newAshramRecord(a *domain.Ashram) *ashramRecord {
	return &ashramRecord{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		UserIDs:   append([]string(nil), a.UserIDs...),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *ashramRecord) toDomain() *domain.Ashram {
	return &domain.Ashram{
		ID:        r.ID,
		Name:      r.Name,
		Location:  r.Location,
		UserIDs:   r.UserIDs,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newAssignmentRecord(a *domain.Assignment) *assignmentRecord {
	return &assignmentRecord{
		ID:        a.ID,
		UserID:    a.UserID,
		AshramID:  a.AshramID,
		Roles:     append([]domain.Role(nil), a.Roles...),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *assignmentRecord) toDomain() *domain.Assignment {
	return &domain.Assignment{
		ID:        r.ID,
		UserID:    r.UserID,
		AshramID:  r.AshramID,
		Roles:     r.Roles,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newAssetRecord(a *domain.Asset) *assetRecord {
	clone := a.Clone()
	return &assetRecord{
		ID:           clone.ID,
		AshramID:     clone.AshramID,
		Name:         clone.Name,
		Category:     clone.Category,
		AssetTag:     clone.AssetTag,
		PurchaseDate: clone.PurchaseDate,
		Status:       clone.Status,
		Owner:        clone.Owner,
		Metadata:     clone.Metadata,
		Reminders:    clone.Reminders,
		Documents:    clone.Documents,
		QRCode:       clone.QRCode,
		CreatedBy:    clone.CreatedBy,
		CreatedAt:    clone.CreatedAt,
		UpdatedAt:    clone.UpdatedAt,
		ArchivedAt:   clone.ArchivedAt,
		DeletedAt:    clone.DeletedAt,
	}
}

func (r *assetRecord) toDomain() *domain.Asset {
	asset := &domain.Asset{
		ID:           r.ID,
		AshramID:     r.AshramID,
		Name:         r.Name,
		Category:     r.Category,
		AssetTag:     r.AssetTag,
		PurchaseDate: r.PurchaseDate,
		Status:       r.Status,
		Owner:        r.Owner,
		Metadata:     r.Metadata,
		Reminders:    r.Reminders,
		Documents:    r.Documents,
		QRCode:       r.QRCode,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ArchivedAt != nil {
		t := *r.ArchivedAt
		asset.ArchivedAt = &t
	}
	if r.DeletedAt != nil {
		t := *r.DeletedAt
		asset.DeletedAt = &t
	}
	return asset
}
