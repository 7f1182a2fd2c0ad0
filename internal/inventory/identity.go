package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/rsaisankalp/ashram-assert/internal/auth"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Roles       []domain.Role
}

// RegisterUser creates a user with a hashed password and no site
// memberships. Email uniqueness is case-insensitive; roles are
// deduplicated preserving order.
func (s *Service) RegisterUser(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email, err := validate.Email(input.Email)
	if err != nil {
		return nil, err
	}
	displayName, err := validate.NonEmpty(input.DisplayName, "Display name")
	if err != nil {
		return nil, err
	}
	roles, err := normalizeRoles(input.Roles, "Role")
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Message: "user with this email already exists"}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		if err == auth.ErrPasswordTooShort {
			return nil, &validate.Error{Field: "Password", Reason: "must be at least 8 characters"}
		}
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Roles:        roles,
		AshramIDs:    []string{},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "roles", user.Roles)
	return user, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a session with a fresh random token
// and a snapshot of the user's current roles. Unknown email and wrong
// password fail identically.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	email, err := validate.Email(input.Email)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &AuthenticationError{}
	}
	if !auth.VerifyPassword(input.Password, user.PasswordHash) {
		return nil, &AuthenticationError{}
	}

	now := s.now()
	user.LastLoginAt = &now
	if _, err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, err
	}
	session := &domain.Session{
		Token:    token,
		UserID:   user.ID,
		IssuedAt: now,
		Roles:    append([]domain.Role(nil), user.Roles...),
	}

	s.sessMu.Lock()
	s.sessions[token] = session
	s.sessMu.Unlock()

	s.logger.Info("user logged in", "user_id", user.ID)
	return session.Clone(), nil
}

// GetSession is a pure lookup; it returns nil for unknown tokens and never
// fails.
func (s *Service) GetSession(token string) *domain.Session {
	s.sessMu.RLock()
	defer s.sessMu.RUnlock()
	return s.sessions[token].Clone()
}

// normalizeRoles validates each role against the closed enum and drops
// duplicates while preserving first-seen order.
func normalizeRoles(roles []domain.Role, field string) ([]domain.Role, error) {
	seen := make(map[domain.Role]bool, len(roles))
	out := make([]domain.Role, 0, len(roles))
	for _, role := range roles {
		if _, err := validate.Enum(role, domain.Roles(), field); err != nil {
			return nil, err
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		out = append(out, role)
	}
	if len(out) == 0 {
		return nil, &validate.Error{Field: "Roles", Reason: "must contain at least one role"}
	}
	return out, nil
}
