package inventory_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/repository/memory"
)

// fixture wires a Service to in-memory repositories with a fixed,
// manually-advanced clock.
type fixture struct {
	svc *inventory.Service

	users       *memory.UserRepository
	ashrams     *memory.AshramRepository
	assignments *memory.AssignmentRepository
	assets      *memory.AssetRepository

	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:       memory.NewUserRepository(),
		ashrams:     memory.NewAshramRepository(),
		assignments: memory.NewAssignmentRepository(),
		assets:      memory.NewAssetRepository(),
		now:         time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	f.svc = inventory.New(inventory.Config{
		Users:       f.users,
		Ashrams:     f.ashrams,
		Assignments: f.assignments,
		Assets:      f.assets,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:         func() time.Time { return f.now },
	})
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) register(t *testing.T, email string, roles ...domain.Role) *domain.User {
	t.Helper()
	user, err := f.svc.RegisterUser(context.Background(), inventory.RegisterInput{
		Email:       email,
		Password:    "correct-horse",
		DisplayName: "Test User",
		Roles:       roles,
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) createAshram(t *testing.T, actorID, name string) *domain.Ashram {
	t.Helper()
	ashram, err := f.svc.CreateAshram(context.Background(), inventory.CreateAshramInput{
		Name:      name,
		Location:  "Vrindavan",
		CreatedBy: actorID,
	})
	require.NoError(t, err)
	return ashram
}

func (f *fixture) assign(t *testing.T, actorID, userID, ashramID string) *domain.Assignment {
	t.Helper()
	assignment, err := f.svc.AssignUserToAshram(context.Background(), inventory.AssignUserInput{
		UserID:      userID,
		AshramID:    ashramID,
		Roles:       []domain.Role{domain.RoleAshramUser},
		RequestedBy: actorID,
	})
	require.NoError(t, err)
	return assignment
}

func (f *fixture) addAsset(t *testing.T, actorID, ashramID, name string, category domain.AssetCategory) *domain.Asset {
	t.Helper()
	asset, err := f.svc.AddAsset(context.Background(), inventory.AddAssetInput{
		AshramID:     ashramID,
		Name:         name,
		Category:     category,
		PurchaseDate: f.now.AddDate(-1, 0, 0),
		AddedBy:      actorID,
	})
	require.NoError(t, err)
	return asset
}

// seed creates an admin, one ashram, and one assigned regular user.
type seeded struct {
	admin  *domain.User
	user   *domain.User
	ashram *domain.Ashram
}

func (f *fixture) seed(t *testing.T, ashramName string) seeded {
	t.Helper()
	admin := f.register(t, "admin@example.org", domain.RoleAdmin)
	user := f.register(t, "keeper@example.org", domain.RoleAshramUser)
	ashram := f.createAshram(t, admin.ID, ashramName)
	f.assign(t, admin.ID, user.ID, ashram.ID)
	return seeded{admin: admin, user: user, ashram: ashram}
}
