// Package tui is an interactive terminal browser over a finished analysis.
package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/Veraticus/nestegg/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config holds TUI configuration.
type Config struct {
	Theme  themes.Theme
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// chrome is the number of lines used by everything except the table.
const chrome = 9

// Model holds the viewer state.
type Model struct {
	analysis *model.BankStatementAnalysis
	theme    themes.Theme
	keymap   KeyMap
	help     help.Model
	table    table.Model
	tabs     []tabView
	active   int
	width    int
	height   int
	quitting bool
}

// New creates a viewer over analysis.
func New(analysis *model.BankStatementAnalysis, cfg Config) Model {
	if analysis == nil {
		analysis = &model.BankStatementAnalysis{}
	}

	styles := table.DefaultStyles()
	styles.Header = cfg.Theme.TableHeader
	styles.Selected = cfg.Theme.Selected

	m := Model{
		analysis: analysis,
		theme:    cfg.Theme,
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		tabs:     buildTabs(analysis),
		width:    cfg.Width,
		height:   cfg.Height,
		table: table.New(
			table.WithFocused(true),
			table.WithStyles(styles),
		),
	}
	m.showTab(0)
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextTab):
			m.showTab((m.active + 1) % len(m.tabs))
			return m, nil
		case key.Matches(msg, m.keymap.PrevTab):
			m.showTab((m.active + len(m.tabs) - 1) % len(m.tabs))
			return m, nil
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// showTab swaps the table contents to tab i.
func (m *Model) showTab(i int) {
	m.active = i
	tab := m.tabs[i]
	// Rows must be cleared first so they never outnumber the new columns
	m.table.SetRows(nil)
	m.table.SetColumns(tab.columns)
	m.table.SetRows(tab.rows)
	m.table.GotoTop()
}

func (m *Model) resize() {
	m.help.Width = m.width
	height := m.height - chrome
	if m.help.ShowAll {
		height -= 3
	}
	m.table.SetHeight(max(height, 3))
	m.table.SetWidth(max(m.width-2, 20))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("nestegg"))
	b.WriteString(" ")
	b.WriteString(m.theme.Subtitle.Render(m.period()))
	b.WriteString("\n")
	b.WriteString(m.headline())
	b.WriteString("\n\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n")

	if len(m.tabs[m.active].rows) == 0 {
		b.WriteString(m.theme.Subtitle.Render("Nothing to show"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render(m.help.View(m.keymap)))
	return b.String()
}

func (m Model) period() string {
	a := m.analysis
	if len(a.MonthsCovered) == 0 {
		return "no transactions"
	}
	return fmt.Sprintf("%s to %s (%d months)", a.StartDate, a.EndDate, len(a.MonthsCovered))
}

func (m Model) headline() string {
	a := m.analysis
	parts := []string{
		"Spend/mo " + cli.FormatMoney(a.MonthlyAverageSpend),
		"Income/mo " + cli.FormatMoney(a.TotalAverageMonthlyIncome),
	}

	savings := cli.FormatMoney(a.MonthlyAverageSavings)
	color := m.theme.Positive
	if a.MonthlyAverageSavings.IsNegative() {
		color = m.theme.Negative
	}
	parts = append(parts, "Savings/mo "+lipgloss.NewStyle().Foreground(color).Render(savings))

	return m.theme.Normal.Render(strings.Join(parts, "   "))
}

func (m Model) tabBar() string {
	rendered := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		label := fmt.Sprintf("%s (%d)", tab.title, len(tab.rows))
		if i == m.active {
			rendered = append(rendered, m.theme.ActiveTab.Render(label))
		} else {
			rendered = append(rendered, m.theme.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
