package analysis

import (
	"github.com/Veraticus/nestegg/internal/cli"
	"github.com/Veraticus/nestegg/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling definitions for analysis summaries.
type Styles struct {
	// Base styles from CLI package
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	// Summary-specific styles
	Box       lipgloss.Style
	KPIBox    lipgloss.Style
	Header    lipgloss.Style
	Essential lipgloss.Style
	Lifestyle lipgloss.Style
	Income    lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SubtleColor).
		Padding(0, 1)

	s.KPIBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(cli.PrimaryColor).
		Padding(0, 1)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.SubtleColor)

	s.Essential = lipgloss.NewStyle().
		Foreground(cli.InfoColor)

	s.Lifestyle = lipgloss.NewStyle().
		Foreground(cli.WarningColor)

	s.Income = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	return s
}

// WithWidth returns a new Styles instance adjusted for the given terminal width.
func (s *Styles) WithWidth(width int) *Styles {
	newStyles := *s

	if width > 0 && width < 100 {
		newStyles.Box = s.Box.Width(width - 4)
		newStyles.KPIBox = s.KPIBox.Width(width - 4)
	}

	return &newStyles
}

// ForMacro returns the style for a macro category.
func (s *Styles) ForMacro(macro model.MacroCategory) lipgloss.Style {
	switch macro {
	case model.MacroEssential:
		return s.Essential
	case model.MacroLifestyle:
		return s.Lifestyle
	case model.MacroIncome:
		return s.Income
	default:
		return s.Normal
	}
}

// RenderBox renders content in a styled box with optional title.
func (s *Styles) RenderBox(content string, title string, style lipgloss.Style) string {
	if title != "" {
		// lipgloss v1.1.0 has no border titles
		titleStyled := s.Subtitle.Render(" " + title + " ")
		return style.Render(titleStyled + "\n" + content)
	}
	return style.Render(content)
}
