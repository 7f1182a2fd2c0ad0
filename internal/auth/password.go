package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 16
	keyLength  = 64

	// scrypt cost parameters. N is the CPU/memory cost factor; the work is
	// paid synchronously on every hash and verify.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var ErrPasswordTooShort = errors.New("password must be at least 8 characters")

// HashPassword derives a salted scrypt digest and encodes it as
// "hex(salt):hex(key)".
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", ErrPasswordTooShort
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the digest for the candidate password with the
// stored salt and compares in constant time. Malformed stored values verify
// as false rather than erroring, so a corrupted hash behaves like a wrong
// password.
func VerifyPassword(password, storedHash string) bool {
	saltHex, keyHex, ok := strings.Cut(storedHash, ":")
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(keyHex)
	if err != nil || len(expected) == 0 {
		return false
	}
	actual, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(expected))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(expected, actual) == 1
}
