package sheets

import (
	"strconv"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
)

// Tab titles, in the order they appear in the spreadsheet.
const (
	TabSummary    = "Summary"
	TabMonthly    = "Monthly"
	TabCategories = "Categories"
	TabRecurring  = "Recurring"
	TabIncome     = "Income"
)

// Tab is one worksheet worth of rows. The first row is the header.
type Tab struct {
	Title        string
	Rows         [][]any
	MoneyColumns []int
}

// BuildReport lays an analysis out as spreadsheet tabs.
func BuildReport(a *model.BankStatementAnalysis) []Tab {
	return []Tab{
		summaryTab(a),
		monthlyTab(a.MonthlyBreakdown),
		categoriesTab(a.ExpenseByCategory, a.ExpenseByMacroCategory),
		recurringTab(a.RecurringExpenses, a.LeakageHotspots),
		incomeTab(a.IncomeSources),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func summaryTab(a *model.BankStatementAnalysis) Tab {
	period := a.StartDate
	if a.EndDate != a.StartDate {
		period += " to " + a.EndDate
	}

	return Tab{
		Title: TabSummary,
		Rows: [][]any{
			{"Metric", "Value"},
			{"Period", period},
			{"Months covered", len(a.MonthsCovered)},
			{"Total transactions", a.TotalTransactions},
			{"Inflow transactions", a.TotalInflowTransactions},
			{"Outflow transactions", a.TotalOutflowTransactions},
			{"Monthly average spend", money(a.MonthlyAverageSpend)},
			{"Monthly average savings", money(a.MonthlyAverageSavings)},
			{"Average monthly income", money(a.TotalAverageMonthlyIncome)},
			{"Employer", a.Employer},
			{"Employment type", a.EmploymentType},
			{"Unparsable rows skipped", a.DroppedRows},
		},
	}
}

func monthlyTab(months []model.MonthlyBreakdown) Tab {
	rows := make([][]any, 0, len(months)+1)
	rows = append(rows, []any{"Month", "Inflow", "Outflow", "Savings", "Transactions"})
	for _, m := range months {
		rows = append(rows, []any{
			m.Month,
			money(m.TotalInflow),
			money(m.TotalOutflow),
			money(m.Savings),
			m.TransactionCount,
		})
	}
	return Tab{Title: TabMonthly, Rows: rows, MoneyColumns: []int{1, 2, 3}}
}

func categoriesTab(categories []model.ExpenseCategorySummary, macros []model.MacroCategorySummary) Tab {
	rows := make([][]any, 0, len(categories)+len(macros)+3)
	rows = append(rows, []any{"Category", "Group", "Total spend", "Average monthly", "Transactions", "Months"})
	for _, c := range categories {
		rows = append(rows, []any{
			string(c.Category),
			string(c.MacroCategory),
			money(c.TotalSpend),
			money(c.AverageMonthlySpend),
			c.TransactionCount,
			c.MonthCount,
		})
	}

	if len(macros) > 0 {
		rows = append(rows, []any{}, []any{"Group", "", "Total spend", "Average monthly", "Transactions", "Months"})
		for _, m := range macros {
			rows = append(rows, []any{
				string(m.MacroCategory),
				"",
				money(m.TotalSpend),
				money(m.AverageMonthlySpend),
				m.TransactionCount,
				m.MonthCount,
			})
		}
	}
	return Tab{Title: TabCategories, Rows: rows, MoneyColumns: []int{2, 3}}
}

func recurringTab(recurring, hotspots []model.RecurringExpense) Tab {
	leaks := make(map[string]bool, len(hotspots))
	for _, h := range hotspots {
		leaks[recurringKey(h)] = true
	}

	rows := make([][]any, 0, len(recurring)+1)
	rows = append(rows, []any{
		"Merchant", "Category", "Group", "Amount", "Average amount",
		"Average day", "Monthly cost", "Transactions", "Months", "Hotspot",
	})
	for _, r := range recurring {
		hotspot := ""
		if leaks[recurringKey(r)] {
			hotspot = "yes"
		}
		rows = append(rows, []any{
			r.Name,
			string(r.Category),
			string(r.MacroCategory),
			r.RoundedAmount.String(),
			money(r.AverageAmount),
			r.AverageDay.StringFixed(1),
			money(r.EstimatedMonthlyCost),
			r.TransactionCount,
			r.MonthCount,
			hotspot,
		})
	}
	return Tab{Title: TabRecurring, Rows: rows, MoneyColumns: []int{3, 4, 6}}
}

func recurringKey(r model.RecurringExpense) string {
	return r.Name + "|" + r.RoundedAmount.String()
}

func incomeTab(sources []model.IncomeSource) Tab {
	rows := make([][]any, 0, len(sources)+1)
	rows = append(rows, []any{
		"Source", "Type", "Income type", "Total", "Average payment",
		"Average monthly", "Transactions", "Months",
	})
	for _, s := range sources {
		rows = append(rows, []any{
			s.Name,
			s.Type,
			string(s.IncomeType),
			money(s.TotalAmount),
			money(s.AverageAmount),
			money(s.AverageMonthlyAmount),
			s.TransactionCount,
			s.MonthCount,
		})
	}
	return Tab{Title: TabIncome, Rows: rows, MoneyColumns: []int{3, 4, 5}}
}

// rangeFor returns the A1 range of a row batch in tab, starting at a 1-based row.
func rangeFor(tab string, row int) string {
	return "'" + tab + "'!A" + strconv.Itoa(row)
}
