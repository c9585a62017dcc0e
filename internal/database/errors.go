package database

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a lookup or delete matches no rows.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when a connection cannot be acquired.
	ErrUnavailable = errors.New("database connection failed")
	// ErrInvalid is returned before any write when a required field is empty.
	ErrInvalid = errors.New("invalid record")
)

// FieldError names the required field that was left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return &FieldError{Field: f[0]}
		}
	}
	return nil
}

func requireFields(entity string, fields ...[2]string) error {
	if err := required(fields...); err != nil {
		return fmt.Errorf("failed to create %s: %w", entity, err)
	}
	return nil
}
