package dto

import "github.com/rsaisankalp/ashram-assert/internal/domain"

type CreateAshramRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

func (r CreateAshramRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	return errors
}

type AssignUserRequest struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

func (r AssignUserRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.UserID == "" {
		errors["user_id"] = "User ID is required"
	}
	if len(r.Roles) == 0 {
		errors["roles"] = "At least one role is required"
	}
	return errors
}

func (r AssignUserRequest) DomainRoles() []domain.Role {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, domain.Role(role))
	}
	return roles
}
