package domain

import "time"

// Ashram is a physical site holding assets and member users.
type Ashram struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	UserIDs   []string  `json:"user_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMember reports whether the user appears in the site's member list.
func (a *Ashram) HasMember(userID string) bool {
	for _, id := range a.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns an independent copy with no shared slices.
func (a *Ashram) Clone() *Ashram {
	if a == nil {
		return nil
	}
	out := *a
	out.UserIDs = append([]string(nil), a.UserIDs...)
	return &out
}
