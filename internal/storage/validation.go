// Package storage provides the data persistence layer for nestegg.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidAnalysis = errors.New("invalid analysis")

	// ErrAnalysisNotFound is returned for unknown analysis IDs.
	ErrAnalysisNotFound = fmt.Errorf("analysis %w", common.ErrNotFound)
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateAnalysis checks the fields the analyses table indexes on.
func validateAnalysis(a *model.BankStatementAnalysis) error {
	if a == nil {
		return fmt.Errorf("%w: analysis", ErrNilParameter)
	}
	if len(a.MonthsCovered) > 0 {
		if a.StartDate != a.MonthsCovered[0] || a.EndDate != a.MonthsCovered[len(a.MonthsCovered)-1] {
			return fmt.Errorf("%w: start and end must match months covered", ErrInvalidAnalysis)
		}
	}
	return nil
}
