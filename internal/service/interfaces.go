// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// AnalysisStore persists finished analyses keyed by user.
type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, userID string, analysis *model.BankStatementAnalysis) (string, error)
	// GetAnalysis returns the latest analysis for the user, or nil when none exists.
	GetAnalysis(ctx context.Context, userID string) (*model.BankStatementAnalysis, error)
	ListAnalyses(ctx context.Context, userID string) ([]AnalysisRecord, error)
	DeleteAnalyses(ctx context.Context, userID string) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}

// AnalysisRecord describes one stored analysis without its payload.
type AnalysisRecord struct {
	CreatedAt           time.Time
	ID                  string
	UserID              string
	StartMonth          string
	EndMonth            string
	MonthlyAverageSpend decimal.Decimal
	Months              int
}

// TransactionFetcher pulls already-structured transactions from a bank feed.
type TransactionFetcher interface {
	GetTransactions(ctx context.Context, startDate, endDate time.Time) ([]model.Transaction, error)
}

// SpendItem is one category and amount pair handed to an advisor.
type SpendItem struct {
	Category string
	Amount   decimal.Decimal
}

// Suggestion is a savings or income idea returned by an advisor.
type Suggestion struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Category         string           `json:"category,omitempty"`
	PotentialSavings *decimal.Decimal `json:"potentialSavings,omitempty"`
	EstimatedIncome  *decimal.Decimal `json:"estimatedIncome,omitempty"`
}

// Advisor produces suggestions from spend items. Implementations are black boxes to the analyzer.
type Advisor interface {
	Suggest(ctx context.Context, items []SpendItem) ([]Suggestion, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
