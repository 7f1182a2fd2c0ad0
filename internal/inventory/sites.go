package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/validate"
)

type CreateAshramInput struct {
	Name      string
	Location  string
	CreatedBy string
}

// CreateAshram creates a site with an empty member list. Only ADMIN or
// HEAD_OFFICE actors may create sites.
func (s *Service) CreateAshram(ctx context.Context, input CreateAshramInput) (*domain.Ashram, error) {
	actor, err := s.requireUser(ctx, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := s.requireAnyRole(actor, domain.RoleAdmin, domain.RoleHeadOffice); err != nil {
		return nil, err
	}

	name, err := validate.NonEmpty(input.Name, "Ashram name")
	if err != nil {
		return nil, err
	}
	location := input.Location
	if location != "" {
		if location, err = validate.NonEmpty(location, "Location"); err != nil {
			return nil, err
		}
	}

	ashram, err := s.ashrams.Create(ctx, &domain.Ashram{
		ID:       uuid.NewString(),
		Name:     name,
		Location: location,
		UserIDs:  []string{},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ashram created", "ashram_id", ashram.ID, "name", ashram.Name)
	return ashram, nil
}

type AssignUserInput struct {
	UserID      string
	AshramID    string
	Roles       []domain.Role
	RequestedBy string
}

// AssignUserToAshram links a user to a site. Membership lists on both sides
// are updated idempotently, then a new Assignment record is created
// unconditionally: repeated calls for the same pair accumulate assignment
// records as an audit trail while the membership lists stay deduplicated.
// The two membership writes are not transactional; both are retry-safe.
func (s *Service) AssignUserToAshram(ctx context.Context, input AssignUserInput) (*domain.Assignment, error) {
	actor, err := s.requireUser(ctx, input.RequestedBy)
	if err != nil {
		return nil, err
	}
	if err := s.requireAnyRole(actor, domain.RoleAdmin, domain.RoleHeadOffice); err != nil {
		return nil, err
	}

	ashram, err := s.requireAshram(ctx, input.AshramID)
	if err != nil {
		return nil, err
	}
	user, err := s.requireUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	roles, err := normalizeRoles(input.Roles, "Assignment role")
	if err != nil {
		return nil, err
	}

	if !user.AssignedTo(ashram.ID) {
		user.AshramIDs = append(user.AshramIDs, ashram.ID)
		if _, err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	if !ashram.HasMember(user.ID) {
		ashram.UserIDs = append(ashram.UserIDs, user.ID)
		if _, err := s.ashrams.Update(ctx, ashram); err != nil {
			return nil, err
		}
	}

	assignment, err := s.assignments.Create(ctx, &domain.Assignment{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		AshramID: ashram.ID,
		Roles:    roles,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user assigned to ashram",
		"user_id", user.ID,
		"ashram_id", ashram.ID,
		"assignment_id", assignment.ID,
	)
	return assignment, nil
}
