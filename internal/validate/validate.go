// Package validate holds the input checks every service operation runs
// before anything is persisted. Each check returns the normalized value and
// an *Error naming the offending field.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Error is a typed validation failure carrying the field it refers to.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NonEmpty trims the value and rejects it if nothing remains.
func NonEmpty(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errf(field, "must be a non-empty string")
	}
	return trimmed, nil
}

// Email checks the shape of an email address and normalizes it to lowercase.
func Email(value string) (string, error) {
	email, err := NonEmpty(value, "Email")
	if err != nil {
		return "", err
	}
	if !emailRegex.MatchString(email) {
		return "", errf("Email", "must be valid")
	}
	return strings.ToLower(email), nil
}

// Date rejects the zero time, the nearest Go analogue of an unparsable date.
func Date(value time.Time, field string) (time.Time, error) {
	if value.IsZero() {
		return time.Time{}, errf(field, "must be a valid date")
	}
	return value, nil
}

// PositiveInt rejects zero and negative values.
func PositiveInt(value int, field string) (int, error) {
	if value <= 0 {
		return 0, errf(field, "must be a positive integer")
	}
	return value, nil
}

// Enum checks membership in a closed value set.
func Enum[T ~string](value T, allowed []T, field string) (T, error) {
	for _, v := range allowed {
		if value == v {
			return value, nil
		}
	}
	opts := make([]string, len(allowed))
	for i, v := range allowed {
		opts[i] = string(v)
	}
	var zero T
	return zero, errf(field, "must be one of %s", strings.Join(opts, ", "))
}
