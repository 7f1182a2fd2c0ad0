// Package memory provides the reference in-memory repositories. Entities
// are deep-copied on every write and read, so stored state is never shared
// with callers.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

// UserRepository is a mutex-guarded map of users keyed by ID.
type UserRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	record := user.Clone()
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	r.mu.Lock()
	r.items[record.ID] = record
	r.mu.Unlock()
	return record.Clone(), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[user.ID]; !ok {
		return nil, nil
	}
	record := user.Clone()
	record.UpdatedAt = time.Now()
	r.items[record.ID] = record
	return record.Clone(), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id].Clone(), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.items {
		if record.Email == email {
			return record.Clone(), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.items))
	for _, record := range r.items {
		out = append(out, record.Clone())
	}
	return out, nil
}

// AshramRepository is a mutex-guarded map of ashrams keyed by ID.
type AshramRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Ashram
}

func NewAshramRepository() *AshramRepository {
	return &AshramRepository{items: make(map[string]*domain.Ashram)}
}

func (r *AshramRepository) Create(_ context.Context, ashram *domain.Ashram) (*domain.Ashram, error) {
	record := ashram.Clone()
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	r.mu.Lock()
	r.items[record.ID] = record
	r.mu.Unlock()
	return record.Clone(), nil
}

func (r *AshramRepository) Update(_ context.Context, ashram *domain.Ashram) (*domain.Ashram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[ashram.ID]; !ok {
		return nil, nil
	}
	record := ashram.Clone()
	record.UpdatedAt = time.Now()
	r.items[record.ID] = record
	return record.Clone(), nil
}

func (r *AshramRepository) FindByID(_ context.Context, id string) (*domain.Ashram, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id].Clone(), nil
}

func (r *AshramRepository) List(_ context.Context) ([]*domain.Ashram, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Ashram, 0, len(r.items))
	for _, record := range r.items {
		out = append(out, record.Clone())
	}
	return out, nil
}

// AssignmentRepository is a mutex-guarded map of assignments keyed by ID.
type AssignmentRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Assignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{items: make(map[string]*domain.Assignment)}
}

func (r *AssignmentRepository) Create(_ context.Context, assignment *domain.Assignment) (*domain.Assignment, error) {
	record := assignment.Clone()
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	r.mu.Lock()
	r.items[record.ID] = record
	r.mu.Unlock()
	return record.Clone(), nil
}

func (r *AssignmentRepository) ListByUserID(_ context.Context, userID string) ([]*domain.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Assignment
	for _, record := range r.items {
		if record.UserID == userID {
			out = append(out, record.Clone())
		}
	}
	return out, nil
}

func (r *AssignmentRepository) ListByAshramID(_ context.Context, ashramID string) ([]*domain.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Assignment
	for _, record := range r.items {
		if record.AshramID == ashramID {
			out = append(out, record.Clone())
		}
	}
	return out, nil
}

func (r *AssignmentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
	return nil
}

// AssetRepository is a mutex-guarded map of assets keyed by ID. Soft-deleted
// assets stay in the map but are excluded from listings.
type AssetRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.Asset
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{items: make(map[string]*domain.Asset)}
}

func (r *AssetRepository) Create(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	record := asset.Clone()
	stamp(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	r.mu.Lock()
	r.items[record.ID] = record
	r.mu.Unlock()
	return record.Clone(), nil
}

func (r *AssetRepository) Update(_ context.Context, asset *domain.Asset) (*domain.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[asset.ID]; !ok {
		return nil, nil
	}
	record := asset.Clone()
	record.UpdatedAt = time.Now()
	r.items[record.ID] = record
	return record.Clone(), nil
}

func (r *AssetRepository) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id].Clone(), nil
}

func (r *AssetRepository) List(_ context.Context) ([]*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Asset
	for _, record := range r.items {
		if record.DeletedAt == nil {
			out = append(out, record.Clone())
		}
	}
	return out, nil
}

func (r *AssetRepository) ListByAshramID(_ context.Context, ashramID string) ([]*domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Asset
	for _, record := range r.items {
		if record.AshramID == ashramID && record.DeletedAt == nil {
			out = append(out, record.Clone())
		}
	}
	return out, nil
}

func (r *AssetRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.items[id]
	if !ok {
		return nil
	}
	now := time.Now()
	record.DeletedAt = &now
	return nil
}
