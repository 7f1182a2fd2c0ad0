// Package testutil wires a full service and router against in-memory
// repositories for handler and integration tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/api"
	"github.com/rsaisankalp/ashram-assert/internal/auth"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/repository/memory"
	"github.com/rsaisankalp/ashram-assert/internal/storage"
)

const TestPassword = "correct-horse"

// Env bundles everything a handler test needs.
type Env struct {
	Service    *inventory.Service
	JWTService *auth.JWTService
	Router     http.Handler
	Store      *MemStore
}

// NewEnv builds a service over fresh in-memory repositories and a router
// around it.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := inventory.New(inventory.Config{
		Users:       memory.NewUserRepository(),
		Ashrams:     memory.NewAshramRepository(),
		Assignments: memory.NewAssignmentRepository(),
		Assets:      memory.NewAssetRepository(),
		Logger:      logger,
	})
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	store := NewMemStore()

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Service:    service,
		JWTService: jwtService,
		Store:      store,
	})

	return &Env{
		Service:    service,
		JWTService: jwtService,
		Router:     router,
		Store:      store,
	}
}

// RegisterUser creates a user through the service with the shared test
// password.
func (e *Env) RegisterUser(t *testing.T, email string, roles ...domain.Role) *domain.User {
	t.Helper()
	user, err := e.Service.RegisterUser(context.Background(), inventory.RegisterInput{
		Email:       email,
		Password:    TestPassword,
		DisplayName: "Test User",
		Roles:       roles,
	})
	if err != nil {
		t.Fatalf("registering test user: %v", err)
	}
	return user
}

// Login returns a bearer token for the user.
func (e *Env) Login(t *testing.T, email string) string {
	t.Helper()
	session, err := e.Service.Login(context.Background(), inventory.LoginInput{
		Email:    email,
		Password: TestPassword,
	})
	if err != nil {
		t.Fatalf("logging in test user: %v", err)
	}
	token, err := e.JWTService.GenerateToken(session)
	if err != nil {
		t.Fatalf("generating test token: %v", err)
	}
	return token
}

// Request performs an HTTP request against the router and returns the
// recorder. A non-nil body is JSON-encoded.
func (e *Env) Request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

// DecodeBody unmarshals a recorder's JSON body.
func DecodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
}

// MemStore is an in-memory ObjectStore for tests.
type MemStore struct {
	objects map[string]memObject
}

type memObject struct {
	data        []byte
	contentType string
}

func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string]memObject)}
}

func (s *MemStore) Put(_ context.Context, key string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.objects[key] = memObject{data: data, contentType: contentType}
	return nil
}

func (s *MemStore) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

var _ storage.ObjectStore = (*MemStore)(nil)
