package sheets

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleAnalysis() *model.BankStatementAnalysis {
	netflix := model.RecurringExpense{
		Name:                 "NETFLIXCOM",
		Category:             model.CategorySubscriptions,
		MacroCategory:        model.MacroLifestyle,
		RoundedAmount:        dec("16"),
		AverageAmount:        dec("15.99"),
		AverageDay:           dec("5"),
		EstimatedMonthlyCost: dec("15.99"),
		TransactionCount:     2,
		MonthCount:           2,
	}
	return &model.BankStatementAnalysis{
		StartDate:                 "2025-03",
		EndDate:                   "2025-04",
		MonthsCovered:             []string{"2025-03", "2025-04"},
		MonthlyAverageSpend:       dec("311.19"),
		MonthlyAverageSavings:     dec("1288.81"),
		TotalAverageMonthlyIncome: dec("1600"),
		Employer:                  "PAYROLL WIDGETCO",
		TotalTransactions:         9,
		MonthlyBreakdown: []model.MonthlyBreakdown{
			{Month: "2025-03", TotalInflow: dec("3200"), TotalOutflow: dec("338.29"), Savings: dec("2861.71"), TransactionCount: 5},
			{Month: "2025-04", TotalInflow: dec("0"), TotalOutflow: dec("284.09"), Savings: dec("-284.09"), TransactionCount: 4},
		},
		RecurringExpenses: []model.RecurringExpense{netflix},
		LeakageHotspots:   []model.RecurringExpense{netflix},
		ExpenseByCategory: []model.ExpenseCategorySummary{
			{Category: model.CategoryGroceries, MacroCategory: model.MacroEssential, TotalSpend: dec("200.5"), AverageMonthlySpend: dec("100.25"), TransactionCount: 3, MonthCount: 2},
		},
		ExpenseByMacroCategory: []model.MacroCategorySummary{
			{MacroCategory: model.MacroEssential, TotalSpend: dec("200.5"), AverageMonthlySpend: dec("100.25"), TransactionCount: 3, MonthCount: 2},
		},
		IncomeSources: []model.IncomeSource{
			{Name: "PAYROLL WIDGETCO", Type: "Income", IncomeType: model.IncomeSalary, TotalAmount: dec("3200"), AverageAmount: dec("3200"), AverageMonthlyAmount: dec("3200"), TransactionCount: 1, MonthCount: 1},
		},
	}
}

func TestBuildReport(t *testing.T) {
	tabs := BuildReport(sampleAnalysis())
	require.Len(t, tabs, 5)

	titles := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		titles = append(titles, tab.Title)
	}
	assert.Equal(t, []string{TabSummary, TabMonthly, TabCategories, TabRecurring, TabIncome}, titles)

	t.Run("summary", func(t *testing.T) {
		summary := tabs[0]
		assert.Equal(t, []any{"Period", "2025-03 to 2025-04"}, summary.Rows[1])
		assert.Equal(t, []any{"Monthly average spend", "311.19"}, summary.Rows[6])
		assert.Equal(t, []any{"Employer", "PAYROLL WIDGETCO"}, summary.Rows[9])
	})

	t.Run("monthly", func(t *testing.T) {
		monthly := tabs[1]
		require.Len(t, monthly.Rows, 3)
		assert.Equal(t, []any{"2025-04", "0.00", "284.09", "-284.09", 4}, monthly.Rows[2])
	})

	t.Run("categories include macro section", func(t *testing.T) {
		categories := tabs[2]
		require.Len(t, categories.Rows, 5)
		assert.Equal(t, []any{"Groceries", "Essential", "200.50", "100.25", 3, 2}, categories.Rows[1])
		assert.Empty(t, categories.Rows[2])
		assert.Equal(t, "Essential", categories.Rows[4][0])
	})

	t.Run("recurring flags hotspots", func(t *testing.T) {
		recurring := tabs[3]
		require.Len(t, recurring.Rows, 2)
		row := recurring.Rows[1]
		assert.Equal(t, "NETFLIXCOM", row[0])
		assert.Equal(t, "16", row[3])
		assert.Equal(t, "15.99", row[6])
		assert.Equal(t, "yes", row[9])
	})

	t.Run("income", func(t *testing.T) {
		income := tabs[4]
		require.Len(t, income.Rows, 2)
		assert.Equal(t, []any{"PAYROLL WIDGETCO", "Income", "Salary", "3200.00", "3200.00", "3200.00", 1, 1}, income.Rows[1])
	})
}

func TestBuildReport_EmptyAnalysis(t *testing.T) {
	tabs := BuildReport(&model.BankStatementAnalysis{})
	for _, tab := range tabs {
		require.NotEmpty(t, tab.Rows, tab.Title)
	}
	// Header only, no macro section
	assert.Len(t, tabs[2].Rows, 1)
	assert.Equal(t, []any{"Period", ""}, tabs[0].Rows[1])
}

func TestBatches(t *testing.T) {
	tests := []struct {
		name  string
		want  []batch
		total int
		size  int
	}{
		{name: "exact", total: 4, size: 2, want: []batch{{0, 2}, {2, 4}}},
		{name: "remainder", total: 5, size: 2, want: []batch{{0, 2}, {2, 4}, {4, 5}}},
		{name: "single", total: 3, size: 10, want: []batch{{0, 3}}},
		{name: "empty", total: 0, size: 10, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batches(tt.total, tt.size))
		})
	}
}

func TestMissingTabs(t *testing.T) {
	existing := map[string]int64{TabSummary: 0, TabIncome: 7}
	got := missingTabs(existing, BuildReport(sampleAnalysis()))
	assert.Equal(t, []string{TabMonthly, TabCategories, TabRecurring}, got)
}

func TestFormatRequests(t *testing.T) {
	tab := BuildReport(sampleAnalysis())[1]
	requests := formatRequests(42, tab)

	// header, freeze, three money columns, resize
	require.Len(t, requests, 6)
	assert.Equal(t, int64(5), requests[0].RepeatCell.Range.EndColumnIndex)
	assert.Equal(t, int64(1), requests[1].UpdateSheetProperties.Properties.GridProperties.FrozenRowCount)
	assert.Equal(t, "CURRENCY", requests[2].RepeatCell.Cell.UserEnteredFormat.NumberFormat.Type)
	assert.Equal(t, int64(42), requests[5].AutoResizeDimensions.Dimensions.SheetId)
}

func TestRangeFor(t *testing.T) {
	assert.Equal(t, "'Monthly'!A1", rangeFor(TabMonthly, 1))
	assert.Equal(t, "'Recurring'!A1001", rangeFor(TabRecurring, 1001))
}

func TestTokenPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, saveToken(path, token))

	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.True(t, loaded.Expiry.Equal(token.Expiry))

	_, err = LoadToken(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
