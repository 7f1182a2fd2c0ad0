package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsaisankalp/ashram-assert/internal/api/dto"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/testutil"
)

// siteEnv is an env with one ashram, an assigned user, and both tokens.
type siteEnv struct {
	*testutil.Env
	ashram     domain.Ashram
	adminToken string
	userToken  string
}

func newSiteEnv(t *testing.T) *siteEnv {
	t.Helper()
	env := testutil.NewEnv(t)
	env.RegisterUser(t, "admin@example.org", domain.RoleAdmin)
	user := env.RegisterUser(t, "user@example.org", domain.RoleAshramUser)
	adminToken := env.Login(t, "admin@example.org")

	rec := env.Request(t, http.MethodPost, "/api/v1/ashrams", adminToken, dto.CreateAshramRequest{Name: "Yamuna Ashram"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var ashram domain.Ashram
	testutil.DecodeBody(t, rec, &ashram)

	assignRec := env.Request(t, http.MethodPost, "/api/v1/ashrams/"+ashram.ID+"/assignments", adminToken, dto.AssignUserRequest{
		UserID: user.ID,
		Roles:  []string{"ASHRAM_USER"},
	})
	require.Equal(t, http.StatusCreated, assignRec.Code)

	return &siteEnv{
		Env:        env,
		ashram:     ashram,
		adminToken: adminToken,
		userToken:  env.Login(t, "user@example.org"),
	}
}

func (e *siteEnv) createAsset(t *testing.T, name, category string) domain.Asset {
	t.Helper()
	rec := e.Request(t, http.MethodPost, "/api/v1/assets", e.userToken, dto.CreateAssetRequest{
		AshramID:     e.ashram.ID,
		Name:         name,
		Category:     category,
		PurchaseDate: time.Now().AddDate(-1, 0, 0),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var asset domain.Asset
	testutil.DecodeBody(t, rec, &asset)
	return asset
}

func TestAssetEndpoints(t *testing.T) {
	t.Run("create returns tag and qr code", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")
		assert.Equal(t, "YAMU-CAR-0001", asset.AssetTag)
		assert.NotEmpty(t, asset.QRCode)

		payload, err := inventory.DecodeQRCode(asset.QRCode)
		require.NoError(t, err)
		assert.Equal(t, "YAMU-CAR-0001", payload.AssetTag)
	})

	t.Run("create rejects bad category", func(t *testing.T) {
		env := newSiteEnv(t)
		rec := env.Request(t, http.MethodPost, "/api/v1/assets", env.userToken, dto.CreateAssetRequest{
			AshramID:     env.ashram.ID,
			Name:         "Thing",
			Category:     "BICYCLE",
			PurchaseDate: time.Now(),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get and list", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")
		env.createAsset(t, "ThinkPad", "LAPTOP")

		getRec := env.Request(t, http.MethodGet, "/api/v1/assets/"+asset.ID, env.userToken, nil)
		require.Equal(t, http.StatusOK, getRec.Code)

		missing := env.Request(t, http.MethodGet, "/api/v1/assets/nope", env.userToken, nil)
		assert.Equal(t, http.StatusNotFound, missing.Code)

		listRec := env.Request(t, http.MethodGet, "/api/v1/assets?category=CAR", env.userToken, nil)
		require.Equal(t, http.StatusOK, listRec.Code)
		var assets []domain.Asset
		testutil.DecodeBody(t, listRec, &assets)
		require.Len(t, assets, 1)
		assert.Equal(t, "Ambassador", assets[0].Name)
	})

	t.Run("update retags on category change", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		rec := env.Request(t, http.MethodPut, "/api/v1/assets/"+asset.ID, env.userToken, map[string]string{
			"category": "ELECTRICAL",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Asset
		testutil.DecodeBody(t, rec, &updated)
		assert.Equal(t, "YAMU-ELE-0001", updated.AssetTag)
	})

	t.Run("archive and delete lifecycle over http", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		denied := env.Request(t, http.MethodPost, "/api/v1/assets/"+asset.ID+"/archive", env.userToken, nil)
		assert.Equal(t, http.StatusForbidden, denied.Code)

		archived := env.Request(t, http.MethodPost, "/api/v1/assets/"+asset.ID+"/archive", env.adminToken, nil)
		require.Equal(t, http.StatusOK, archived.Code)

		// Retention window has not elapsed.
		deleted := env.Request(t, http.MethodDelete, "/api/v1/assets/"+asset.ID, env.adminToken, nil)
		assert.Equal(t, http.StatusPreconditionFailed, deleted.Code)
	})

	t.Run("reminder schedule and complete", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		rec := env.Request(t, http.MethodPost, "/api/v1/assets/"+asset.ID+"/reminders", env.userToken, dto.ScheduleReminderRequest{
			Type:    "INSURANCE",
			DueDate: time.Now().AddDate(0, 0, 10),
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var withReminder domain.Asset
		testutil.DecodeBody(t, rec, &withReminder)
		require.Len(t, withReminder.Reminders, 1)

		listRec := env.Request(t, http.MethodGet, "/api/v1/reminders", env.userToken, nil)
		require.Equal(t, http.StatusOK, listRec.Code)
		var upcoming []inventory.UpcomingReminder
		testutil.DecodeBody(t, listRec, &upcoming)
		require.Len(t, upcoming, 1)

		completeRec := env.Request(t, http.MethodPost,
			"/api/v1/assets/"+asset.ID+"/reminders/"+withReminder.Reminders[0].ID+"/complete",
			env.userToken, nil)
		require.Equal(t, http.StatusOK, completeRec.Code)

		var completed domain.Asset
		testutil.DecodeBody(t, completeRec, &completed)
		assert.True(t, completed.Reminders[0].Completed)
	})
}

func TestDocumentEndpoints(t *testing.T) {
	t.Run("upload stores the file and records the key", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("file", "policy.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("pdf bytes"))
		require.NoError(t, err)
		require.NoError(t, form.WriteField("category", "INSURANCE"))
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/"+asset.ID+"/documents", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+env.userToken)
		rec := httptest.NewRecorder()
		env.Router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var updated domain.Asset
		testutil.DecodeBody(t, rec, &updated)
		require.Len(t, updated.Documents, 1)
		assert.Equal(t, "policy.pdf", updated.Documents[0].Name)
		assert.Contains(t, updated.Documents[0].URL, "assets/"+asset.ID+"/")

		body, _, err := env.Store.Get(context.Background(), updated.Documents[0].URL)
		require.NoError(t, err)
		body.Close()
	})

	t.Run("download streams the stored bytes", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("file", "rc.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("registration certificate"))
		require.NoError(t, err)
		require.NoError(t, form.WriteField("category", "RC"))
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/"+asset.ID+"/documents", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+env.userToken)
		uploadRec := httptest.NewRecorder()
		env.Router.ServeHTTP(uploadRec, req)
		require.Equal(t, http.StatusCreated, uploadRec.Code)

		var updated domain.Asset
		testutil.DecodeBody(t, uploadRec, &updated)
		docID := updated.Documents[0].ID

		downloadRec := env.Request(t, http.MethodGet,
			"/api/v1/assets/"+asset.ID+"/documents/"+docID, env.userToken, nil)
		require.Equal(t, http.StatusOK, downloadRec.Code)
		assert.Equal(t, "registration certificate", downloadRec.Body.String())
	})

	t.Run("external link attaches without upload", func(t *testing.T) {
		env := newSiteEnv(t)
		asset := env.createAsset(t, "Ambassador", "CAR")

		rec := env.Request(t, http.MethodPost, "/api/v1/assets/"+asset.ID+"/documents/link", env.userToken, dto.DocumentLinkRequest{
			Name:     "Invoice",
			URL:      "https://files.example.org/invoice.pdf",
			Category: "INVOICE",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var updated domain.Asset
		testutil.DecodeBody(t, rec, &updated)
		require.Len(t, updated.Documents, 1)
		assert.Equal(t, "https://files.example.org/invoice.pdf", updated.Documents[0].URL)
	})
}
