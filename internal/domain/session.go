package domain

import "time"

// Session is issued on login and held in process memory only. Roles are a
// snapshot taken at issuance; later role changes do not propagate. Sessions
// have no expiry and are lost on restart.
type Session struct {
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
	Roles    []Role    `json:"roles"`
}

// Clone returns an independent copy with no shared slices.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Roles = append([]Role(nil), s.Roles...)
	return &out
}
