package tui

import (
	"testing"

	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleAnalysis() *model.BankStatementAnalysis {
	return &model.BankStatementAnalysis{
		StartDate:                 "2025-03",
		EndDate:                   "2025-04",
		MonthsCovered:             []string{"2025-03", "2025-04"},
		MonthlyAverageSpend:       dec("311.19"),
		MonthlyAverageSavings:     dec("-11.19"),
		TotalAverageMonthlyIncome: dec("300"),
		MonthlyBreakdown: []model.MonthlyBreakdown{
			{Month: "2025-03", TotalInflow: dec("3200"), TotalOutflow: dec("338.29"), Savings: dec("2861.71"), TransactionCount: 5},
			{Month: "2025-04", TotalOutflow: dec("284.09"), Savings: dec("-284.09"), TransactionCount: 4},
		},
		ExpenseByCategory: []model.ExpenseCategorySummary{
			{Category: model.CategoryGroceries, MacroCategory: model.MacroEssential, TotalSpend: dec("200.5"), AverageMonthlySpend: dec("100.25"), TransactionCount: 3},
		},
		RecurringExpenses: []model.RecurringExpense{
			{Name: "NETFLIXCOM", Category: model.CategorySubscriptions, EstimatedMonthlyCost: dec("15.99"), AverageDay: dec("5"), MonthCount: 2},
		},
	}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestBuildTabs(t *testing.T) {
	tabs := buildTabs(sampleAnalysis())
	require.Len(t, tabs, 4)

	assert.Equal(t, "Months", tabs[0].title)
	require.Len(t, tabs[0].rows, 2)
	assert.Equal(t, "2025-04", tabs[0].rows[1][0])
	assert.Equal(t, "$0.00", tabs[0].rows[1][1])
	assert.Equal(t, "$284.09", tabs[0].rows[1][2])

	assert.Equal(t, "Groceries", tabs[1].rows[0][0])
	assert.Equal(t, "$200.50", tabs[1].rows[0][2])

	assert.Equal(t, []string{"NETFLIXCOM", "Subscriptions", "$15.99", "~5", "2"}, []string(tabs[2].rows[0]))

	assert.Empty(t, tabs[3].rows)

	for _, tab := range tabs {
		for _, row := range tab.rows {
			assert.Len(t, row, len(tab.columns), tab.title)
		}
	}
}

func TestModel_TabNavigation(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		active int
	}{
		{name: "starts on months", active: 0},
		{name: "tab moves right", keys: []string{"tab"}, active: 1},
		{name: "l moves right", keys: []string{"l", "l"}, active: 2},
		{name: "wraps forward", keys: []string{"tab", "tab", "tab", "tab"}, active: 0},
		{name: "wraps backward", keys: []string{"shift+tab"}, active: 3},
		{name: "h moves left", keys: []string{"tab", "tab", "h"}, active: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(sampleAnalysis(), DefaultConfig())
			for _, k := range tt.keys {
				m, _ = update(t, m, keyPress(k))
			}
			assert.Equal(t, tt.active, m.active)
			assert.Len(t, m.table.Rows(), len(m.tabs[tt.active].rows))
		})
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(sampleAnalysis(), DefaultConfig())
	m, cmd := update(t, m, keyPress("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := New(sampleAnalysis(), Config{Theme: themes.CatppuccinMocha, Width: 100, Height: 30})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "2025-03 to 2025-04 (2 months)")
	assert.Contains(t, view, "Spend/mo $311.19")
	assert.Contains(t, view, "Months (2)")
	assert.Contains(t, view, "Income (0)")
	assert.Contains(t, view, "2025-04")

	// Income tab is empty
	m, _ = update(t, m, keyPress("shift+tab"))
	assert.Contains(t, m.View(), "Nothing to show")
}

func TestModel_NilAnalysis(t *testing.T) {
	m := New(nil, DefaultConfig())
	view := m.View()
	assert.Contains(t, view, "no transactions")
	assert.Contains(t, view, "Nothing to show")
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(sampleAnalysis(), DefaultConfig())
	before := m.table.Height()

	m, _ = update(t, m, keyPress("?"))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.table.Height(), before)
}

func TestThemesByName(t *testing.T) {
	assert.Equal(t, themes.CatppuccinMocha.Primary, themes.ByName("catppuccin").Primary)
	assert.Equal(t, themes.Default.Primary, themes.ByName("unknown").Primary)
}
