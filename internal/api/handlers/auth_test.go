package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/testutil"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		env := testutil.NewEnv(t)

		rec := env.Request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Email:       "seva@example.org",
			Password:    "correct-horse",
			DisplayName: "Seva Das",
			Roles:       []string{"ASHRAM_USER"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var user domain.User
		testutil.DecodeBody(t, rec, &user)
		assert.Equal(t, "seva@example.org", user.Email)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("password is never echoed back", func(t *testing.T) {
		env := testutil.NewEnv(t)
		rec := env.Request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Email:       "seva@example.org",
			Password:    "correct-horse",
			DisplayName: "Seva Das",
			Roles:       []string{"ASHRAM_USER"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "correct-horse")
		assert.NotContains(t, rec.Body.String(), "password_hash")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		env := testutil.NewEnv(t)
		rec := env.Request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Email: "seva@example.org",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "seva@example.org", domain.RoleAshramUser)

		rec := env.Request(t, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Email:       "SEVA@example.org",
			Password:    "correct-horse",
			DisplayName: "Someone Else",
			Roles:       []string{"ASHRAM_USER"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("returns a usable bearer token", func(t *testing.T) {
		env := testutil.NewEnv(t)
		user := env.RegisterUser(t, "seva@example.org", domain.RoleAshramUser)

		rec := env.Request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email:    "seva@example.org",
			Password: testutil.TestPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.AuthResponse
		testutil.DecodeBody(t, rec, &resp)
		assert.Equal(t, user.ID, resp.UserID)
		require.NotEmpty(t, resp.Token)

		// The token must open protected routes.
		protected := env.Request(t, http.MethodGet, "/api/v1/reminders", resp.Token, nil)
		assert.Equal(t, http.StatusOK, protected.Code)
	})

	t.Run("bad credentials are a 401 either way", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "seva@example.org", domain.RoleAshramUser)

		wrongPassword := env.Request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email:    "seva@example.org",
			Password: "wrong-password",
		})
		unknownEmail := env.Request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email:    "nobody@example.org",
			Password: testutil.TestPassword,
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("protected routes reject missing and garbage tokens", func(t *testing.T) {
		env := testutil.NewEnv(t)

		missing := env.Request(t, http.MethodGet, "/api/v1/reminders", "", nil)
		garbage := env.Request(t, http.MethodGet, "/api/v1/reminders", "not-a-jwt", nil)

		assert.Equal(t, http.StatusUnauthorized, missing.Code)
		assert.Equal(t, http.StatusUnauthorized, garbage.Code)
	})
}
