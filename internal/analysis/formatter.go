package analysis

import (
	"fmt"
	"strings"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// CLIFormatter renders an analysis for terminal display.
type CLIFormatter struct {
	styles *Styles
	// topN caps the category, recurring and income tables.
	topN int
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
		topN:   10,
	}
}

// FormatSummary renders the headline KPIs followed by the detail tables.
func (f *CLIFormatter) FormatSummary(a *model.BankStatementAnalysis) string {
	if a == nil {
		return f.styles.Error.Render("No analysis available")
	}

	sections := []string{f.formatHeader(a), f.formatKPIs(a)}

	if len(a.MonthlyBreakdown) > 0 {
		sections = append(sections, f.formatMonths(a.MonthlyBreakdown))
	}
	if len(a.ExpenseByCategory) > 0 {
		sections = append(sections, f.formatCategories(a.ExpenseByCategory))
	}
	if len(a.LeakageHotspots) > 0 {
		sections = append(sections, f.formatRecurring("Leakage hotspots", a.LeakageHotspots))
	}
	if len(a.IncomeSources) > 0 {
		sections = append(sections, f.formatIncome(a.IncomeSources))
	}

	return strings.Join(sections, "\n\n")
}

func (f *CLIFormatter) formatHeader(a *model.BankStatementAnalysis) string {
	title := cli.FormatTitle("Bank Statement Analysis")
	if len(a.MonthsCovered) == 0 {
		return title + "\n" + f.styles.Subtle.Render("No transactions found")
	}

	period := fmt.Sprintf("Period: %s to %s (%d months, %d transactions)",
		a.StartDate, a.EndDate, len(a.MonthsCovered), a.TotalTransactions)
	lines := []string{title, f.styles.Subtitle.Render(period)}

	if a.DroppedRows > 0 {
		lines = append(lines, f.styles.Warning.Render(fmt.Sprintf("%d unparsable rows skipped", a.DroppedRows)))
	}
	if a.Employer != "" {
		lines = append(lines, f.styles.Subtle.Render("Employer: "+a.Employer))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatKPIs(a *model.BankStatementAnalysis) string {
	rows := [][2]string{
		{"Average monthly income", cli.FormatMoney(a.TotalAverageMonthlyIncome)},
		{"Average monthly spend", cli.FormatMoney(a.MonthlyAverageSpend)},
		{"Average monthly savings", cli.FormatSignedMoney(a.MonthlyAverageSavings)},
		{"Recurring essentials", fmt.Sprintf("%d", len(a.RecurringEssential))},
		{"Recurring lifestyle", fmt.Sprintf("%d", len(a.RecurringLifestyle))},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-26s %s", r[0], r[1]))
	}
	return f.styles.RenderBox(strings.Join(lines, "\n"), cli.MoneyIcon+" Cash flow", f.styles.KPIBox)
}

func (f *CLIFormatter) formatMonths(months []model.MonthlyBreakdown) string {
	header := f.styles.Header.Render(fmt.Sprintf("%-8s %14s %14s %14s %6s", "Month", "In", "Out", "Savings", "Txns"))
	lines := []string{header, f.styles.Subtle.Render(strings.Repeat("─", lipgloss.Width(header)))}

	for _, m := range months {
		lines = append(lines, fmt.Sprintf("%-8s %14s %14s %14s %6d",
			m.Month,
			cli.FormatMoney(m.TotalInflow),
			cli.FormatMoney(m.TotalOutflow),
			cli.FormatMoney(m.Savings),
			m.TransactionCount))
	}
	return f.styles.Subtitle.Render(cli.ChartIcon+" Monthly breakdown") + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatCategories(categories []model.ExpenseCategorySummary) string {
	header := f.styles.Header.Render(fmt.Sprintf("%-20s %-10s %14s %14s", "Category", "Macro", "Total", "Per month"))
	lines := []string{header, f.styles.Subtle.Render(strings.Repeat("─", lipgloss.Width(header)))}

	for _, c := range categories[:min(f.topN, len(categories))] {
		macro := f.styles.ForMacro(c.MacroCategory).Render(fmt.Sprintf("%-10s", c.MacroCategory))
		lines = append(lines, fmt.Sprintf("%-20s %s %14s %14s",
			truncate(string(c.Category), 20),
			macro,
			cli.FormatMoney(c.TotalSpend),
			cli.FormatMoney(c.AverageMonthlySpend)))
	}
	return f.styles.Subtitle.Render("Spending by category") + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatRecurring(title string, recurring []model.RecurringExpense) string {
	header := f.styles.Header.Render(fmt.Sprintf("%-28s %-16s %12s %7s", "Merchant", "Category", "Monthly", "Months"))
	lines := []string{header, f.styles.Subtle.Render(strings.Repeat("─", lipgloss.Width(header)))}

	for _, r := range recurring[:min(f.topN, len(recurring))] {
		lines = append(lines, fmt.Sprintf("%-28s %s %12s %7d",
			truncate(r.Name, 28),
			f.styles.ForMacro(r.MacroCategory).Render(fmt.Sprintf("%-16s", truncate(string(r.Category), 16))),
			cli.FormatMoney(r.EstimatedMonthlyCost),
			r.MonthCount))
	}
	return f.styles.Subtitle.Render(cli.RepeatIcon+" "+title) + "\n" + strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatIncome(sources []model.IncomeSource) string {
	header := f.styles.Header.Render(fmt.Sprintf("%-28s %-16s %14s %7s", "Source", "Type", "Per month", "Months"))
	lines := []string{header, f.styles.Subtle.Render(strings.Repeat("─", lipgloss.Width(header)))}

	for _, s := range sources[:min(f.topN, len(sources))] {
		lines = append(lines, fmt.Sprintf("%-28s %-16s %14s %7d",
			truncate(s.Name, 28),
			truncate(string(s.IncomeType), 16),
			f.styles.Income.Render(cli.FormatMoney(s.AverageMonthlyAmount)),
			s.MonthCount))
	}
	return f.styles.Subtitle.Render("Income sources") + "\n" + strings.Join(lines, "\n")
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
