package analysis

import (
	"strings"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// Hints carry optional user context that is not in the statements.
type Hints struct {
	// Employer is used verbatim as the employer and marks matching payers as salary.
	Employer string
	// EmploymentType enables employer inference when it contains "full".
	EmploymentType string
}

// Aggregates are the independent aggregation results KPI synthesis combines.
type Aggregates struct {
	Recurring []model.RecurringExpense
	Category  []model.ExpenseCategorySummary
	Macro     []model.MacroCategorySummary
	Income    []model.IncomeSource
	Monthly   []model.MonthlyBreakdown
}

// Synthesize combines aggregations into the final analysis. leakageTopN caps
// the leakage hotspot list.
func Synthesize(txns []model.DerivedTransaction, agg Aggregates, hints Hints, leakageTopN int) model.BankStatementAnalysis {
	months := make([]string, 0, len(agg.Monthly))
	var inflow, outflow, savings decimal.Decimal
	for _, m := range agg.Monthly {
		months = append(months, m.Month)
		inflow = inflow.Add(m.TotalInflow)
		outflow = outflow.Add(m.TotalOutflow)
		savings = savings.Add(m.Savings)
	}
	n := len(agg.Monthly)
	if n == 0 {
		n = 1
	}

	result := model.BankStatementAnalysis{
		MonthlyAverageSpend:       average(outflow, n),
		MonthlyAverageSavings:     average(savings, n),
		TotalAverageMonthlyIncome: average(inflow, n),
		EmploymentType:            strings.TrimSpace(hints.EmploymentType),
		Employer:                  inferEmployer(agg.Income, hints),
		MonthsCovered:             months,
		MonthlyBreakdown:          nonNil(agg.Monthly),
		RecurringExpenses:         nonNil(agg.Recurring),
		RecurringEssential:        []model.RecurringExpense{},
		RecurringLifestyle:        []model.RecurringExpense{},
		LeakageHotspots:           []model.RecurringExpense{},
		ExpenseByCategory:         nonNil(agg.Category),
		ExpenseByMacroCategory:    nonNil(agg.Macro),
		IncomeSources:             nonNil(agg.Income),
		TotalTransactions:         len(txns),
	}
	if len(months) > 0 {
		result.StartDate = months[0]
		result.EndDate = months[len(months)-1]
	}

	for _, tx := range txns {
		if tx.IsInflow {
			result.TotalInflowTransactions++
		}
		if tx.IsOutflow {
			result.TotalOutflowTransactions++
		}
	}

	for _, r := range result.RecurringExpenses {
		switch r.MacroCategory {
		case model.MacroEssential:
			result.RecurringEssential = append(result.RecurringEssential, r)
		case model.MacroLifestyle:
			result.RecurringLifestyle = append(result.RecurringLifestyle, r)
		}
	}

	// RecurringExpenses is already sorted by estimated monthly cost.
	top := min(leakageTopN, len(result.RecurringExpenses))
	result.LeakageHotspots = append(result.LeakageHotspots, result.RecurringExpenses[:top]...)

	return result
}

// inferEmployer returns the employer hint verbatim, or for full-time workers
// the largest salary payer, falling back to the largest payer seen in two or
// more months. Sources must be sorted by total, largest first.
func inferEmployer(sources []model.IncomeSource, hints Hints) string {
	if employer := strings.TrimSpace(hints.Employer); employer != "" {
		return employer
	}
	if !strings.Contains(strings.ToLower(hints.EmploymentType), "full") {
		return ""
	}

	for _, s := range sources {
		if s.IncomeType == model.IncomeSalary {
			return s.Name
		}
	}
	for _, s := range sources {
		if s.MonthCount >= 2 {
			return s.Name
		}
	}
	return ""
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
