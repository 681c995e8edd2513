package analysis

import (
	"sort"

	"github.com/Veraticus/nestegg/internal/model"
)

// SummarizeMonths builds one cash-flow row per month, oldest first. Internal
// transfers count toward TransactionCount but not toward inflow or outflow.
func SummarizeMonths(txns []model.DerivedTransaction) []model.MonthlyBreakdown {
	byMonth := make(map[string]*model.MonthlyBreakdown)
	for _, tx := range txns {
		m, ok := byMonth[tx.MonthKey]
		if !ok {
			m = &model.MonthlyBreakdown{Month: tx.MonthKey}
			byMonth[tx.MonthKey] = m
		}
		m.TransactionCount++

		if tx.IsInternal {
			continue
		}
		switch {
		case tx.IsInflow:
			m.TotalInflow = m.TotalInflow.Add(tx.AbsAmount)
		case tx.IsOutflow:
			m.TotalOutflow = m.TotalOutflow.Add(tx.AbsAmount)
		}
	}

	months := make([]model.MonthlyBreakdown, 0, len(byMonth))
	for _, m := range byMonth {
		m.Savings = m.TotalInflow.Sub(m.TotalOutflow)
		months = append(months, *m)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}
