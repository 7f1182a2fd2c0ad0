package dto

import "github.com/rsaisankalp/ashram-assert/internal/domain"

type RegisterRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

func (r RegisterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	} else if len(r.Password) < 8 {
		errors["password"] = "Password must be at least 8 characters"
	}
	if r.DisplayName == "" {
		errors["display_name"] = "Display name is required"
	}
	if len(r.Roles) == 0 {
		errors["roles"] = "At least one role is required"
	}

	return errors
}

func (r RegisterRequest) DomainRoles() []domain.Role {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, domain.Role(role))
	}
	return roles
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Email == "" {
		errors["email"] = "Email is required"
	}
	if r.Password == "" {
		errors["password"] = "Password is required"
	}

	return errors
}

type AuthResponse struct {
	Token  string        `json:"token"`
	UserID string        `json:"user_id"`
	Roles  []domain.Role `json:"roles"`
}
