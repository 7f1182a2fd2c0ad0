// Package gormrepo implements the repository interfaces on a relational
// database through gorm. Every method converts between domain entities and
// flat record types, so callers never share memory with gorm's session
// cache.
package gormrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

// UserRepository persists users in the users table.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	rec := newUserRecord(user)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	var existing userRecord
	err := r.db.WithContext(ctx).First(&existing, "id = ?", user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec := newUserRecord(user)
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

// AshramRepository persists sites in the ashrams table.
type AshramRepository struct {
	db *gorm.DB
}

func NewAshramRepository(db *gorm.DB) *AshramRepository {
	return &AshramRepository{db: db}
}

func (r *AshramRepository) Create(ctx context.Context, ashram *domain.Ashram) (*domain.Ashram, error) {
	rec := newAshramRecord(ashram)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AshramRepository) Update(ctx context.Context, ashram *domain.Ashram) (*domain.Ashram, error) {
	var existing ashramRecord
	err := r.db.WithContext(ctx).First(&existing, "id = ?", ashram.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec := newAshramRecord(ashram)
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AshramRepository) FindByID(ctx context.Context, id string) (*domain.Ashram, error) {
	var rec ashramRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AshramRepository) List(ctx context.Context) ([]*domain.Ashram, error) {
	var recs []ashramRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Ashram, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

// AssignmentRepository persists membership records in the assignments table.
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	rec := newAssignmentRecord(assignment)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AssignmentRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Assignment, error) {
	var recs []assignmentRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Assignment, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *AssignmentRepository) ListByAshramID(ctx context.Context, ashramID string) ([]*domain.Assignment, error) {
	var recs []assignmentRecord
	if err := r.db.WithContext(ctx).Where("ashram_id = ?", ashramID).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Assignment, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&assignmentRecord{}, "id = ?", id).Error
}

// AssetRepository persists assets in the assets table. Soft delete keeps
// the row and stamps deleted_at; listings filter it out, direct lookups do
// not.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	rec := newAssetRecord(asset)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AssetRepository) Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	var existing assetRecord
	err := r.db.WithContext(ctx).First(&existing, "id = ?", asset.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec := newAssetRecord(asset)
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*domain.Asset, error) {
	var rec assetRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *AssetRepository) List(ctx context.Context) ([]*domain.Asset, error) {
	var recs []assetRecord
	if err := r.db.WithContext(ctx).Where("deleted_at IS NULL").Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Asset, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *AssetRepository) ListByAshramID(ctx context.Context, ashramID string) ([]*domain.Asset, error) {
	var recs []assetRecord
	if err := r.db.WithContext(ctx).
		Where("ashram_id = ? AND deleted_at IS NULL", ashramID).
		Order("created_at").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Asset, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].toDomain())
	}
	return out, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&assetRecord{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now()).Error
}
