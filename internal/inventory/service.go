// Package inventory implements the asset-management core: identity and
// access, site membership, the asset lifecycle with tag and QR generation,
// reminder and document sub-entities, queries, and dashboard aggregation.
// All storage goes through the repository interfaces; sessions and tag
// counters are state owned by each Service instance.
package inventory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/repository"
)

type Service struct {
	users       repository.UserRepository
	ashrams     repository.AshramRepository
	assignments repository.AssignmentRepository
	assets      repository.AssetRepository

	logger *slog.Logger
	now    func() time.Time

	// Login sessions, keyed by token. Process-local, no expiry, lost on
	// restart.
	sessMu   sync.RWMutex
	sessions map[string]*domain.Session

	// Per-(ashram, category) tag counters. Monotonic, never reused, not
	// persisted; two processes sharing a repository can race on tags.
	tagMu sync.Mutex
	tags  map[tagKey]int
}

type Config struct {
	Users       repository.UserRepository
	Ashrams     repository.AshramRepository
	Assignments repository.AssignmentRepository
	Assets      repository.AssetRepository

	Logger *slog.Logger
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

func New(cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		users:       cfg.Users,
		ashrams:     cfg.Ashrams,
		assignments: cfg.Assignments,
		assets:      cfg.Assets,
		logger:      logger,
		now:         now,
		sessions:    make(map[string]*domain.Session),
		tags:        make(map[tagKey]int),
	}
}

// requireUser resolves the actor or fails with NotFoundError.
func (s *Service) requireUser(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, &NotFoundError{Resource: "user"}
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "user"}
	}
	return user, nil
}

// requireAshram resolves a site or fails with NotFoundError.
func (s *Service) requireAshram(ctx context.Context, id string) (*domain.Ashram, error) {
	if id == "" {
		return nil, &NotFoundError{Resource: "ashram"}
	}
	ashram, err := s.ashrams.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ashram == nil {
		return nil, &NotFoundError{Resource: "ashram"}
	}
	return ashram, nil
}

// requireAnyRole fails with AuthorizationError unless the actor holds at
// least one of the allowed roles.
func (s *Service) requireAnyRole(user *domain.User, roles ...domain.Role) error {
	if !user.HasAnyRole(roles...) {
		return &AuthorizationError{Message: "user does not have permission for this operation"}
	}
	return nil
}

// requireAssignment fails with AuthorizationError unless an assignment
// links the user to the ashram.
func (s *Service) requireAssignment(ctx context.Context, userID, ashramID string) error {
	assignments, err := s.assignments.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.AshramID == ashramID {
			return nil
		}
	}
	return &AuthorizationError{Message: "user is not assigned to this ashram"}
}
