package tui

import (
	"strconv"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/charmbracelet/bubbles/table"
)

// tabView is the content of one viewer tab.
type tabView struct {
	title   string
	columns []table.Column
	rows    []table.Row
}

func buildTabs(a *model.BankStatementAnalysis) []tabView {
	return []tabView{
		monthsTab(a.MonthlyBreakdown),
		categoriesTab(a.ExpenseByCategory),
		recurringTab(a.RecurringExpenses),
		incomeTab(a.IncomeSources),
	}
}

func monthsTab(months []model.MonthlyBreakdown) tabView {
	rows := make([]table.Row, 0, len(months))
	for _, m := range months {
		rows = append(rows, table.Row{
			m.Month,
			cli.FormatMoney(m.TotalInflow),
			cli.FormatMoney(m.TotalOutflow),
			cli.FormatMoney(m.Savings),
			strconv.Itoa(m.TransactionCount),
		})
	}
	return tabView{
		title: "Months",
		columns: []table.Column{
			{Title: "Month", Width: 9},
			{Title: "Inflow", Width: 13},
			{Title: "Outflow", Width: 13},
			{Title: "Savings", Width: 14},
			{Title: "Txns", Width: 6},
		},
		rows: rows,
	}
}

func categoriesTab(categories []model.ExpenseCategorySummary) tabView {
	rows := make([]table.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, table.Row{
			string(c.Category),
			string(c.MacroCategory),
			cli.FormatMoney(c.TotalSpend),
			cli.FormatMoney(c.AverageMonthlySpend),
			strconv.Itoa(c.TransactionCount),
		})
	}
	return tabView{
		title: "Categories",
		columns: []table.Column{
			{Title: "Category", Width: 18},
			{Title: "Group", Width: 10},
			{Title: "Total", Width: 13},
			{Title: "Per month", Width: 13},
			{Title: "Txns", Width: 6},
		},
		rows: rows,
	}
}

func recurringTab(recurring []model.RecurringExpense) tabView {
	rows := make([]table.Row, 0, len(recurring))
	for _, r := range recurring {
		rows = append(rows, table.Row{
			r.Name,
			string(r.Category),
			cli.FormatMoney(r.EstimatedMonthlyCost),
			"~" + r.AverageDay.StringFixed(0),
			strconv.Itoa(r.MonthCount),
		})
	}
	return tabView{
		title: "Recurring",
		columns: []table.Column{
			{Title: "Merchant", Width: 24},
			{Title: "Category", Width: 16},
			{Title: "Per month", Width: 12},
			{Title: "Day", Width: 5},
			{Title: "Months", Width: 7},
		},
		rows: rows,
	}
}

func incomeTab(sources []model.IncomeSource) tabView {
	rows := make([]table.Row, 0, len(sources))
	for _, s := range sources {
		rows = append(rows, table.Row{
			s.Name,
			string(s.IncomeType),
			cli.FormatMoney(s.TotalAmount),
			cli.FormatMoney(s.AverageMonthlyAmount),
			strconv.Itoa(s.MonthCount),
		})
	}
	return tabView{
		title: "Income",
		columns: []table.Column{
			{Title: "Source", Width: 24},
			{Title: "Type", Width: 16},
			{Title: "Total", Width: 13},
			{Title: "Per month", Width: 13},
			{Title: "Months", Width: 7},
		},
		rows: rows,
	}
}
