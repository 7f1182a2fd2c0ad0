package domain

import "time"

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	PasswordHash string     `json:"-"`
	Roles        []Role     `json:"roles"`
	AshramIDs    []string   `json:"ashram_ids"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// AssignedTo reports whether the ashram appears in the user's membership list.
func (u *User) AssignedTo(ashramID string) bool {
	for _, id := range u.AshramIDs {
		if id == ashramID {
			return true
		}
	}
	return false
}

// Clone returns an independent copy with no shared slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Roles = append([]Role(nil), u.Roles...)
	out.AshramIDs = append([]string(nil), u.AshramIDs...)
	if u.LastLoginAt != nil {
		t := *u.LastLoginAt
		out.LastLoginAt = &t
	}
	return &out
}
