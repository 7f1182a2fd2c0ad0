// Package repository defines the storage interfaces the service consumes.
// Implementations must return independent copies: the service mutates
// returned entities in place before persisting, and callers must never be
// able to reach stored state through a returned reference.
package repository

import (
	"context"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
)

// Create assigns an ID when absent and stamps CreatedAt/UpdatedAt when
// zero. Update replaces the stored record and stamps UpdatedAt; it returns
// (nil, nil) when the ID is unknown, as does FindByID.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type AshramRepository interface {
	Create(ctx context.Context, ashram *domain.Ashram) (*domain.Ashram, error)
	Update(ctx context.Context, ashram *domain.Ashram) (*domain.Ashram, error)
	FindByID(ctx context.Context, id string) (*domain.Ashram, error)
	List(ctx context.Context) ([]*domain.Ashram, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Assignment, error)
	ListByAshramID(ctx context.Context, ashramID string) ([]*domain.Assignment, error)
	// Delete removes the record outright; assignments have no soft delete.
	Delete(ctx context.Context, id string) error
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	// List and ListByAshramID exclude soft-deleted assets.
	List(ctx context.Context) ([]*domain.Asset, error)
	ListByAshramID(ctx context.Context, ashramID string) ([]*domain.Asset, error)
	// Delete sets the soft-delete marker; the row survives for audit.
	Delete(ctx context.Context, id string) error
}
