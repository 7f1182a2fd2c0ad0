package domain

import "time"

// Assignment is the membership edge between a user and an ashram. Every
// assignment request creates a fresh record, so repeated assignments of the
// same pair accumulate as an audit trail; membership lists on User and
// Ashram stay deduplicated independently.
type Assignment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	AshramID  string    `json:"ashram_id"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns an independent copy with no shared slices.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}
	out := *a
	out.Roles = append([]Role(nil), a.Roles...)
	return &out
}
