package user

import (
	"errors"
	"fmt"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrCompanyExists      = errors.New("company name already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	// ErrValidation is the root of every field-level registration error.
	ErrValidation = errors.New("validation failed")
)

// Unique-violation code reported by Postgres.
const PgUniqueViolation = "23505"

// FieldError reports a single invalid registration field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrValidation }
