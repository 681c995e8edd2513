// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Common application errors.
var (
	// Statement errors.
	ErrMissingColumn = errors.New("missing required column")
	ErrNoSources     = errors.New("no statement sources provided")

	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Plaid errors.
	ErrPlaidConnection = errors.New("plaid connection failed")
	ErrPlaidRateLimit  = errors.New("plaid rate limit exceeded")

	// Advisor errors.
	ErrNoSuggestions = errors.New("no suggestions returned")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Column kinds reported by MissingColumnError.
const (
	ColumnDate   = "date"
	ColumnAmount = "amount"
)

// MissingColumnError reports a statement file whose headers do not contain a
// usable date column or amount representation. It aborts the whole batch.
type MissingColumnError struct {
	Source  string
	Kind    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	what := "a " + e.Kind + " column"
	if e.Kind == ColumnAmount {
		what = "amount, debit, or credit columns"
	}
	return fmt.Sprintf("[%s] could not find %s (columns were: %s)",
		e.Source, what, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrPlaidRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
