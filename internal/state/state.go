// Package state holds the in-memory collections of the dashboard and the
// mutations applied to them. Nothing in this package performs IO; callers load
// a collection, mutate it here, and persist the result.
package state

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("task title is required")
	ErrInvalidFilter    = errors.New("filter must be all, completed or pending")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrEmptyNote        = errors.New("note title and content are required")
	ErrNoteNotFound     = errors.New("note not found")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidTheme     = errors.New("theme must be dark or light")
)

// Generator supplies timestamps and identifiers for new records.
type Generator struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultGenerator uses the UTC wall clock and random UUIDs.
func DefaultGenerator() Generator {
	return Generator{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
	}
}
