package gormrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/repository/gormrepo"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormrepo.AutoMigrate(db))
	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find round-trips json columns", func(t *testing.T) {
		repo := gormrepo.NewUserRepository(openTestDB(t))

		created, err := repo.Create(ctx, &domain.User{
			Email:        "seva@example.org",
			DisplayName:  "Seva Das",
			PasswordHash: "salt:key",
			Roles:        []domain.Role{domain.RoleAshramUser, domain.RoleHeadOffice},
			AshramIDs:    []string{"a1", "a2"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []domain.Role{domain.RoleAshramUser, domain.RoleHeadOffice}, found.Roles)
		assert.Equal(t, []string{"a1", "a2"}, found.AshramIDs)
		assert.Equal(t, "salt:key", found.PasswordHash)
	})

	t.Run("find by email", func(t *testing.T) {
		repo := gormrepo.NewUserRepository(openTestDB(t))
		_, err := repo.Create(ctx, &domain.User{
			Email:        "seva@example.org",
			DisplayName:  "Seva Das",
			PasswordHash: "x",
			Roles:        []domain.Role{domain.RoleAshramUser},
		})
		require.NoError(t, err)

		found, err := repo.FindByEmail(ctx, "seva@example.org")
		require.NoError(t, err)
		require.NotNil(t, found)

		missing, err := repo.FindByEmail(ctx, "nobody@example.org")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("update unknown id yields nil nil", func(t *testing.T) {
		repo := gormrepo.NewUserRepository(openTestDB(t))
		updated, err := repo.Update(ctx, &domain.User{ID: "missing"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("update replaces the record and keeps created_at", func(t *testing.T) {
		repo := gormrepo.NewUserRepository(openTestDB(t))
		created, err := repo.Create(ctx, &domain.User{
			Email:        "seva@example.org",
			DisplayName:  "Seva Das",
			PasswordHash: "x",
			Roles:        []domain.Role{domain.RoleAshramUser},
		})
		require.NoError(t, err)

		now := time.Now()
		created.LastLoginAt = &now
		created.AshramIDs = []string{"a1"}
		updated, err := repo.Update(ctx, created)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, updated.LastLoginAt)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"a1"}, found.AshramIDs)
	})
}

func TestAssignmentRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := gormrepo.NewAssignmentRepository(db)

	first, err := repo.Create(ctx, &domain.Assignment{
		UserID:   "u1",
		AshramID: "a1",
		Roles:    []domain.Role{domain.RoleAshramUser},
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Assignment{
		UserID:   "u1",
		AshramID: "a2",
		Roles:    []domain.Role{domain.RoleAshramUser},
	})
	require.NoError(t, err)

	byUser, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byAshram, err := repo.ListByAshramID(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, byAshram, 1)
	assert.Equal(t, first.ID, byAshram[0].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	byUser, err = repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
}

func TestAssetRepository(t *testing.T) {
	ctx := context.Background()

	newAsset := func(tag string) *domain.Asset {
		return &domain.Asset{
			AshramID:     "a1",
			Name:         "Ambassador",
			Category:     domain.CategoryCar,
			AssetTag:     tag,
			PurchaseDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
			Status:       domain.StatusActive,
			Metadata:     map[string]string{"plate": "UP-80"},
			Reminders: []domain.Reminder{
				{ID: "r1", Type: domain.ReminderTax, DueDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
			},
			Documents: []domain.Document{
				{ID: "d1", Name: "RC Book", URL: "k/rc.pdf", Category: domain.DocumentRC, UploadedAt: time.Date(2023, 4, 2, 0, 0, 0, 0, time.UTC)},
			},
			QRCode:    "payload",
			CreatedBy: "u1",
		}
	}

	t.Run("sub-entities round-trip", func(t *testing.T) {
		repo := gormrepo.NewAssetRepository(openTestDB(t))
		created, err := repo.Create(ctx, newAsset("YAMU-CAR-0001"))
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, map[string]string{"plate": "UP-80"}, found.Metadata)
		require.Len(t, found.Reminders, 1)
		assert.Equal(t, domain.ReminderTax, found.Reminders[0].Type)
		require.Len(t, found.Documents, 1)
		assert.Equal(t, domain.DocumentRC, found.Documents[0].Category)
	})

	t.Run("soft delete hides rows from listings only", func(t *testing.T) {
		repo := gormrepo.NewAssetRepository(openTestDB(t))
		kept, err := repo.Create(ctx, newAsset("YAMU-CAR-0001"))
		require.NoError(t, err)
		gone, err := repo.Create(ctx, newAsset("YAMU-CAR-0002"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, gone.ID))

		listed, err := repo.ListByAshramID(ctx, "a1")
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, kept.ID, listed[0].ID)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		found, err := repo.FindByID(ctx, gone.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.NotNil(t, found.DeletedAt)
	})

	t.Run("update unknown id yields nil nil", func(t *testing.T) {
		repo := gormrepo.NewAssetRepository(openTestDB(t))
		updated, err := repo.Update(ctx, &domain.Asset{ID: "missing"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
