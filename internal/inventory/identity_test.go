package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		f := newFixture(t)
		user, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "Seva@Example.org",
			Password:    "long-enough",
			DisplayName: "Seva Das",
			Roles:       []domain.Role{domain.RoleAshramUser},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "seva@example.org", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotContains(t, user.PasswordHash, "long-enough")
		assert.Empty(t, user.AshramIDs)
		assert.Nil(t, user.LastLoginAt)
	})

	t.Run("rejects duplicate email case-insensitively", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "seva@example.org", domain.RoleAshramUser)

		_, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "SEVA@example.org",
			Password:    "long-enough",
			DisplayName: "Someone Else",
			Roles:       []domain.Role{domain.RoleAshramUser},
		})
		var conflict *inventory.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "not-an-email",
			Password:    "long-enough",
			DisplayName: "Seva Das",
			Roles:       []domain.Role{domain.RoleAshramUser},
		})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
	})

	t.Run("rejects short password", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "seva@example.org",
			Password:    "short",
			DisplayName: "Seva Das",
			Roles:       []domain.Role{domain.RoleAshramUser},
		})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Password", verr.Field)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "seva@example.org",
			Password:    "long-enough",
			DisplayName: "Seva Das",
			Roles:       []domain.Role{"SUPERUSER"},
		})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
	})

	t.Run("deduplicates roles preserving order", func(t *testing.T) {
		f := newFixture(t)
		user, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "seva@example.org",
			Password:    "long-enough",
			DisplayName: "Seva Das",
			Roles: []domain.Role{
				domain.RoleHeadOffice,
				domain.RoleAshramUser,
				domain.RoleHeadOffice,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.Role{domain.RoleHeadOffice, domain.RoleAshramUser}, user.Roles)
	})

	t.Run("requires at least one role", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RegisterUser(ctx, inventory.RegisterInput{
			Email:       "seva@example.org",
			Password:    "long-enough",
			DisplayName: "Seva Das",
		})
		var verr *validate.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Roles", verr.Field)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues session with role snapshot", func(t *testing.T) {
		f := newFixture(t)
		user := f.register(t, "seva@example.org", domain.RoleAshramUser, domain.RoleHeadOffice)

		session, err := f.svc.Login(ctx, inventory.LoginInput{
			Email:    "seva@example.org",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, f.now, session.IssuedAt)
		assert.Equal(t, []domain.Role{domain.RoleAshramUser, domain.RoleHeadOffice}, session.Roles)

		stored, err := f.users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastLoginAt)
		assert.Equal(t, f.now, *stored.LastLoginAt)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "seva@example.org", domain.RoleAshramUser)

		_, errUnknown := f.svc.Login(ctx, inventory.LoginInput{
			Email:    "nobody@example.org",
			Password: "correct-horse",
		})
		_, errWrong := f.svc.Login(ctx, inventory.LoginInput{
			Email:    "seva@example.org",
			Password: "wrong-password",
		})

		var authErr *inventory.AuthenticationError
		require.ErrorAs(t, errUnknown, &authErr)
		require.ErrorAs(t, errWrong, &authErr)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("each login issues a distinct token", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "seva@example.org", domain.RoleAshramUser)

		first, err := f.svc.Login(ctx, inventory.LoginInput{Email: "seva@example.org", Password: "correct-horse"})
		require.NoError(t, err)
		second, err := f.svc.Login(ctx, inventory.LoginInput{Email: "seva@example.org", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil for unknown token", func(t *testing.T) {
		f := newFixture(t)
		assert.Nil(t, f.svc.GetSession("no-such-token"))
	})

	t.Run("returned session is an independent copy", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "seva@example.org", domain.RoleAshramUser)
		session, err := f.svc.Login(ctx, inventory.LoginInput{Email: "seva@example.org", Password: "correct-horse"})
		require.NoError(t, err)

		got := f.svc.GetSession(session.Token)
		require.NotNil(t, got)
		got.Roles[0] = domain.RoleAdmin

		again := f.svc.GetSession(session.Token)
		assert.Equal(t, []domain.Role{domain.RoleAshramUser}, again.Roles)
	})

	t.Run("role changes after login do not touch the snapshot", func(t *testing.T) {
		f := newFixture(t)
		user := f.register(t, "seva@example.org", domain.RoleAshramUser)
		session, err := f.svc.Login(ctx, inventory.LoginInput{Email: "seva@example.org", Password: "correct-horse"})
		require.NoError(t, err)

		stored, err := f.users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		stored.Roles = []domain.Role{domain.RoleAdmin}
		_, err = f.users.Update(ctx, stored)
		require.NoError(t, err)

		got := f.svc.GetSession(session.Token)
		assert.Equal(t, []domain.Role{domain.RoleAshramUser}, got.Roles)
	})
}
