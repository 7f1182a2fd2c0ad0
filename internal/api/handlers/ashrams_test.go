package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/testutil"
)

func TestAshramEndpoints(t *testing.T) {
	t.Run("admin creates a site", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "admin@example.org", domain.RoleAdmin)
		token := env.Login(t, "admin@example.org")

		rec := env.Request(t, http.MethodPost, "/api/v1/ashrams", token, dto.CreateAshramRequest{
			Name:     "Yamuna Ashram",
			Location: "Vrindavan",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var ashram domain.Ashram
		testutil.DecodeBody(t, rec, &ashram)
		assert.Equal(t, "Yamuna Ashram", ashram.Name)
	})

	t.Run("regular user cannot create a site", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "user@example.org", domain.RoleAshramUser)
		token := env.Login(t, "user@example.org")

		rec := env.Request(t, http.MethodPost, "/api/v1/ashrams", token, dto.CreateAshramRequest{
			Name: "Yamuna Ashram",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("assignment endpoint links user and site", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "admin@example.org", domain.RoleAdmin)
		user := env.RegisterUser(t, "user@example.org", domain.RoleAshramUser)
		token := env.Login(t, "admin@example.org")

		rec := env.Request(t, http.MethodPost, "/api/v1/ashrams", token, dto.CreateAshramRequest{Name: "Yamuna Ashram"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var ashram domain.Ashram
		testutil.DecodeBody(t, rec, &ashram)

		assignRec := env.Request(t, http.MethodPost, "/api/v1/ashrams/"+ashram.ID+"/assignments", token, dto.AssignUserRequest{
			UserID: user.ID,
			Roles:  []string{"ASHRAM_USER"},
		})
		require.Equal(t, http.StatusCreated, assignRec.Code)

		var assignment domain.Assignment
		testutil.DecodeBody(t, assignRec, &assignment)
		assert.Equal(t, user.ID, assignment.UserID)
		assert.Equal(t, ashram.ID, assignment.AshramID)
	})

	t.Run("site dashboard respects access", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "admin@example.org", domain.RoleAdmin)
		env.RegisterUser(t, "outsider@example.org", domain.RoleAshramUser)
		adminToken := env.Login(t, "admin@example.org")
		outsiderToken := env.Login(t, "outsider@example.org")

		rec := env.Request(t, http.MethodPost, "/api/v1/ashrams", adminToken, dto.CreateAshramRequest{Name: "Yamuna Ashram"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var ashram domain.Ashram
		testutil.DecodeBody(t, rec, &ashram)

		allowed := env.Request(t, http.MethodGet, "/api/v1/ashrams/"+ashram.ID+"/dashboard", adminToken, nil)
		require.Equal(t, http.StatusOK, allowed.Code)

		var dashboard inventory.AshramDashboard
		testutil.DecodeBody(t, allowed, &dashboard)
		assert.Equal(t, ashram.ID, dashboard.AshramID)

		denied := env.Request(t, http.MethodGet, "/api/v1/ashrams/"+ashram.ID+"/dashboard", outsiderToken, nil)
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})

	t.Run("head office dashboard is role gated", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.RegisterUser(t, "admin@example.org", domain.RoleAdmin)
		env.RegisterUser(t, "user@example.org", domain.RoleAshramUser)
		adminToken := env.Login(t, "admin@example.org")
		userToken := env.Login(t, "user@example.org")

		allowed := env.Request(t, http.MethodGet, "/api/v1/dashboard", adminToken, nil)
		assert.Equal(t, http.StatusOK, allowed.Code)

		denied := env.Request(t, http.MethodGet, "/api/v1/dashboard", userToken, nil)
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})
}
