// Package analysis turns standardized transactions into a BankStatementAnalysis.
//
// Every stage after parsing is a pure function of its input: derive, five
// independent aggregations (recurring, category, macro category, income and
// monthly), then KPI synthesis.
package analysis

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/common"
	"github.com/Veraticus/nestegg/internal/statement"
)

// Config holds the tunable thresholds of the analyzer.
type Config struct {
	// DateOrder resolves ambiguous numeric dates such as 03/04/2025.
	DateOrder statement.DateOrder
	// RecurringMinTransactions is the fewest charges a recurring bucket needs.
	RecurringMinTransactions int
	// RecurringMinMonths is the fewest distinct months a recurring bucket needs.
	RecurringMinMonths int
	// LeakageTopN caps the number of leakage hotspots.
	LeakageTopN int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DateOrder:                statement.DayFirst,
		RecurringMinTransactions: 2,
		RecurringMinMonths:       2,
		LeakageTopN:              10,
	}
}

// Validate checks that thresholds are usable.
func (c Config) Validate() error {
	if _, err := statement.ParseDateOrder(string(c.DateOrder)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if c.RecurringMinTransactions < 1 {
		return fmt.Errorf("%w: recurring minimum transactions must be at least 1", common.ErrInvalidConfig)
	}
	if c.RecurringMinMonths < 1 {
		return fmt.Errorf("%w: recurring minimum months must be at least 1", common.ErrInvalidConfig)
	}
	if c.LeakageTopN < 0 {
		return fmt.Errorf("%w: leakage top N cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}

// Deps contains the collaborators of an Analyzer.
type Deps struct {
	// Classifier assigns categories to merchants. Defaults to the built-in rules.
	Classifier *classification.Classifier
	// Logger receives per-file and per-stage diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Analyzer runs the statement pipeline.
type Analyzer struct {
	classifier *classification.Classifier
	logger     *slog.Logger
	config     Config
}

// NewAnalyzer creates an analyzer with the provided configuration and dependencies.
func NewAnalyzer(config Config, deps Deps) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyzer config: %w", err)
	}

	classifier := deps.Classifier
	if classifier == nil {
		classifier = classification.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		classifier: classifier,
		logger:     logger.With("component", "analyzer"),
		config:     config,
	}, nil
}
