package auth

import (
	"crypto/rand"
	"encoding/base64"
)

// NewSessionToken returns a URL-safe random token for a login session.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
