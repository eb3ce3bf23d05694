package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindDuplicateKey  ErrorKind = "duplicate_key"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op     string
	Kind   ErrorKind
	Entity string // Optional: "newspaper", "issue", "editor", "subscriber"
	ID     ID     // Optional: identifier the operation was about
	Path   string // Optional: relevant file path
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Entity != "" {
		base += fmt.Sprintf(" (%s", e.Entity)
		if e.ID != 0 {
			base += fmt.Sprintf(" id=%d", e.ID)
		}
		base += ")"
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// NotFound builds the error returned when an operation references a missing entity.
func NotFound(op, entity string, id ID) error {
	return &OpError{Op: op, Kind: KindNotFound, Entity: entity, ID: id, Err: ErrNotFound}
}

// DuplicateKey builds the error returned when an identifier is already taken.
func DuplicateKey(op, entity string, id ID) error {
	return &OpError{
		Op:     op,
		Kind:   KindDuplicateKey,
		Entity: entity,
		ID:     id,
		Err:    fmt.Errorf("a %s with ID %d already exists: %w", entity, id, ErrDuplicateKey),
	}
}

// InvalidInput builds a validation error for a named field.
func InvalidInput(op, field, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidInput),
	}
}
