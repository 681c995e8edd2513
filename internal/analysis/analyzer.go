package analysis

import (
	"context"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/statement"
)

// AnalyzeFiles parses statement files in order and analyzes the combined
// transactions. A file without a date column or amount representation fails
// the whole batch with an error wrapping common.ErrMissingColumn.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, files []statement.File, hints Hints) (*model.BankStatementAnalysis, error) {
	parsed, err := statement.Parse(ctx, files, statement.Options{
		Logger:    a.logger,
		DateOrder: a.config.DateOrder,
	})
	if err != nil {
		return nil, err
	}

	result := a.AnalyzeTransactions(parsed.Transactions, hints)
	result.DroppedRows = parsed.Dropped

	a.logger.Info("Analyzed statements",
		"files", len(files),
		"transactions", result.TotalTransactions,
		"dropped_rows", parsed.Dropped,
		"months", len(result.MonthsCovered))

	return result, nil
}

// AnalyzeTransactions runs derivation, the aggregations and KPI synthesis over
// already standardized transactions.
func (a *Analyzer) AnalyzeTransactions(txns []model.Transaction, hints Hints) *model.BankStatementAnalysis {
	derived := Derive(txns, a.classifier)

	agg := Aggregates{
		Recurring: DetectRecurring(derived, a.classifier, a.config.RecurringMinTransactions, a.config.RecurringMinMonths),
		Category:  SummarizeCategories(derived),
		Macro:     SummarizeMacroCategories(derived),
		Income:    SummarizeIncome(derived, hints.Employer),
		Monthly:   SummarizeMonths(derived),
	}

	a.logger.Debug("Aggregated transactions",
		"derived", len(derived),
		"recurring", len(agg.Recurring),
		"categories", len(agg.Category),
		"income_sources", len(agg.Income),
		"months", len(agg.Monthly))

	result := Synthesize(derived, agg, hints, a.config.LeakageTopN)
	return &result
}
