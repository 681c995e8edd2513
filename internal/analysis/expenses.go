package analysis

import (
	"sort"

	"github.com/Veraticus/nestegg/internal/classification"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

type spendTotals struct {
	total  decimal.Decimal
	months monthSet
	count  int
}

func (s *spendTotals) add(tx model.DerivedTransaction) {
	s.total = s.total.Add(tx.AbsAmount)
	s.months.add(tx.MonthKey)
	s.count++
}

// SummarizeCategories totals every non-internal outflow by category,
// largest spend first.
func SummarizeCategories(txns []model.DerivedTransaction) []model.ExpenseCategorySummary {
	totals := make(map[model.Category]*spendTotals)
	for _, tx := range txns {
		if !spendable(tx.IsOutflow, tx.IsInternal) {
			continue
		}
		t, ok := totals[tx.Category]
		if !ok {
			t = &spendTotals{months: monthSet{}}
			totals[tx.Category] = t
		}
		t.add(tx)
	}

	summaries := make([]model.ExpenseCategorySummary, 0, len(totals))
	for category, t := range totals {
		summaries = append(summaries, model.ExpenseCategorySummary{
			Category:            category,
			MacroCategory:       classification.MacroFor(category),
			TotalSpend:          t.total,
			AverageMonthlySpend: average(t.total, len(t.months)),
			TransactionCount:    t.count,
			MonthCount:          len(t.months),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if c := summaries[i].TotalSpend.Cmp(summaries[j].TotalSpend); c != 0 {
			return c > 0
		}
		return summaries[i].Category < summaries[j].Category
	})
	return summaries
}

// SummarizeMacroCategories totals every non-internal outflow by macro category,
// largest spend first.
func SummarizeMacroCategories(txns []model.DerivedTransaction) []model.MacroCategorySummary {
	totals := make(map[model.MacroCategory]*spendTotals)
	for _, tx := range txns {
		if !spendable(tx.IsOutflow, tx.IsInternal) {
			continue
		}
		t, ok := totals[tx.MacroCategory]
		if !ok {
			t = &spendTotals{months: monthSet{}}
			totals[tx.MacroCategory] = t
		}
		t.add(tx)
	}

	summaries := make([]model.MacroCategorySummary, 0, len(totals))
	for macro, t := range totals {
		summaries = append(summaries, model.MacroCategorySummary{
			MacroCategory:       macro,
			TotalSpend:          t.total,
			AverageMonthlySpend: average(t.total, len(t.months)),
			TransactionCount:    t.count,
			MonthCount:          len(t.months),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if c := summaries[i].TotalSpend.Cmp(summaries[j].TotalSpend); c != 0 {
			return c > 0
		}
		return summaries[i].MacroCategory < summaries[j].MacroCategory
	})
	return summaries
}
