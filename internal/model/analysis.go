package model

import "github.com/shopspring/decimal"

// Amounts serialize as JSON numbers. Quoted strings still decode.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// RecurringExpense is a merchant and rounded amount pairing seen across several months.
type RecurringExpense struct {
	Name                 string          `json:"name"`
	Category             Category        `json:"category"`
	MacroCategory        MacroCategory   `json:"macroCategory"`
	RoundedAmount        decimal.Decimal `json:"roundedAmount"`
	AverageAmount        decimal.Decimal `json:"averageAmount"`
	AverageDay           decimal.Decimal `json:"averageDay"`
	EstimatedMonthlyCost decimal.Decimal `json:"estimatedMonthlyCost"`
	TransactionCount     int             `json:"transactionCount"`
	MonthCount           int             `json:"monthCount"`
}

// ExpenseCategorySummary totals outflows for one category.
type ExpenseCategorySummary struct {
	Category            Category        `json:"category"`
	MacroCategory       MacroCategory   `json:"macroCategory"`
	TotalSpend          decimal.Decimal `json:"totalSpend"`
	AverageMonthlySpend decimal.Decimal `json:"averageMonthlySpend"`
	TransactionCount    int             `json:"transactionCount"`
	MonthCount          int             `json:"monthCount"`
}

// MacroCategorySummary totals outflows for one macro category.
type MacroCategorySummary struct {
	MacroCategory       MacroCategory   `json:"macroCategory"`
	TotalSpend          decimal.Decimal `json:"totalSpend"`
	AverageMonthlySpend decimal.Decimal `json:"averageMonthlySpend"`
	TransactionCount    int             `json:"transactionCount"`
	MonthCount          int             `json:"monthCount"`
}

// IncomeSource totals inflows from one normalized payer.
type IncomeSource struct {
	Name                 string          `json:"name"`
	Type                 string          `json:"type"`
	IncomeType           IncomeType      `json:"incomeType"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	AverageAmount        decimal.Decimal `json:"averageAmount"`
	AverageMonthlyAmount decimal.Decimal `json:"averageMonthlyAmount"`
	TransactionCount     int             `json:"transactionCount"`
	MonthCount           int             `json:"monthCount"`
}

// MonthlyBreakdown is the cash flow of one calendar month.
type MonthlyBreakdown struct {
	Month            string          `json:"month"`
	TotalInflow      decimal.Decimal `json:"totalInflow"`
	TotalOutflow     decimal.Decimal `json:"totalOutflow"`
	Savings          decimal.Decimal `json:"savings"`
	TransactionCount int             `json:"transactionCount"`
}

// BankStatementAnalysis is the complete result of analyzing a batch of statements.
// It is built once and never mutated; every downstream consumer reads this shape.
type BankStatementAnalysis struct {
	MonthlyAverageSpend       decimal.Decimal          `json:"monthlyAverageSpend"`
	MonthlyAverageSavings     decimal.Decimal          `json:"monthlyAverageSavings"`
	TotalAverageMonthlyIncome decimal.Decimal          `json:"totalAverageMonthlyIncome"`
	StartDate                 string                   `json:"startDate"`
	EndDate                   string                   `json:"endDate"`
	Employer                  string                   `json:"employer,omitempty"`
	EmploymentType            string                   `json:"employmentType,omitempty"`
	MonthsCovered             []string                 `json:"monthsCovered"`
	MonthlyBreakdown          []MonthlyBreakdown       `json:"monthlyBreakdown"`
	RecurringExpenses         []RecurringExpense       `json:"recurringExpenses"`
	RecurringEssential        []RecurringExpense       `json:"recurringEssential"`
	RecurringLifestyle        []RecurringExpense       `json:"recurringLifestyle"`
	LeakageHotspots           []RecurringExpense       `json:"leakageHotspots"`
	ExpenseByCategory         []ExpenseCategorySummary `json:"expenseByCategory"`
	ExpenseByMacroCategory    []MacroCategorySummary   `json:"expenseByMacroCategory"`
	IncomeSources             []IncomeSource           `json:"incomeSources"`
	TotalTransactions         int                      `json:"totalTransactions"`
	TotalInflowTransactions   int                      `json:"totalInflowTransactions"`
	TotalOutflowTransactions  int                      `json:"totalOutflowTransactions"`
	DroppedRows               int                      `json:"droppedRows"`
}
