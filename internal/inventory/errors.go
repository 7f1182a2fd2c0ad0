package inventory

import "fmt"

// The service surfaces failures as distinguishable kinds rather than raw
// strings so callers can map them to responses (400/401/403/404/409/412).
// Validation failures are *validate.Error values from the validate package.

// ConflictError is a uniqueness violation, e.g. a duplicate email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthenticationError is a credential mismatch. The message is deliberately
// generic: it must not reveal whether the email exists.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string { return "invalid credentials" }

// AuthorizationError means the actor lacks a required role or assignment.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError names the kind of entity that could not be resolved.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s not found", e.Resource) }

// PreconditionError means the entity exists but is in the wrong state for
// the requested operation.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }
