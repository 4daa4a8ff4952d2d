package service

import (
	"errors"
	"strings"

	"citizen_registry/internal/store"
)

// Errors surfaced to the API layer. Each maps to one stable client response.
var (
	ErrMissingToken          = errors.New("access token required")
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDuplicateIdentifier   = errors.New("duplicate identifier")
	ErrInvalidPageParameters = errors.New("invalid pagination parameters")
	ErrInvalidCitizen        = errors.New("invalid citizen record")
	ErrNotFound              = errors.New("not found")
	ErrUnavailable           = errors.New("service temporarily unavailable")
)

// DuplicateError is a DuplicateIdentifier failure naming the clashing field
type DuplicateError struct {
	Field string // "nin" or "email"
}

func (e *DuplicateError) Error() string {
	if e.Field == "email" {
		return "Email already exists"
	}
	return "NIN already exists"
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicateIdentifier }

// ValidationError is an InvalidCitizen failure with a client-facing reason
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidCitizen }

// translate maps store errors into service errors, leaving unknown errors intact
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrUnavailable):
		return errors.Join(ErrUnavailable, err)
	}
	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		field := "nin"
		if strings.Contains(strings.ToLower(conflict.Constraint), "email") {
			field = "email"
		}
		return &DuplicateError{Field: field}
	}
	return err
}
