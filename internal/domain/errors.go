// Package domain holds the rules of the donation lifecycle: the error taxonomy,
// the role capability policy, the donation request state machine, the drive and
// allocation ledger arithmetic, and badge derivation. It is free of I/O; the
// storage layer runs these rules against rows it has locked inside a transaction.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"pustakdhaan/internal/models"
)

// Error kinds. Every rejection returned by this package unwraps to one of them.
var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrInvalidOperation      = errors.New("invalid operation")
	ErrInvalidState          = errors.New("invalid state")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// Error is a rejection of a given kind with a human-readable reason.
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Unauthorized returns an ErrUnauthorized rejection.
func Unauthorized(format string, args ...any) error {
	return newError(ErrUnauthorized, format, args...)
}

// Forbidden returns an ErrForbidden rejection.
func Forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

// NotFound returns an ErrNotFound rejection.
func NotFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

// InvalidOperation returns an ErrInvalidOperation rejection.
func InvalidOperation(format string, args ...any) error {
	return newError(ErrInvalidOperation, format, args...)
}

// InvalidState returns an ErrInvalidState rejection.
func InvalidState(format string, args ...any) error {
	return newError(ErrInvalidState, format, args...)
}

// Shortfall is a category whose requested amount exceeds what is in stock.
type Shortfall struct {
	Category  models.AgeCategory
	Available int
	Requested int
}

// InsufficientInventoryError lists every category an allocation could not cover.
type InsufficientInventoryError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientInventoryError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("category %s (available: %d, requested: %d)", s.Category, s.Available, s.Requested))
	}
	return "not enough books in " + strings.Join(parts, ", ")
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}
