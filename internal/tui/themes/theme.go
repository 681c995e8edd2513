// Package themes holds the color palettes of the analysis viewer.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	TableHeader lipgloss.Style
	Selected    lipgloss.Style
	Footer      lipgloss.Style
	Box         lipgloss.Style
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Positive    lipgloss.Color
	Negative    lipgloss.Color
}

func build(primary, muted, border, fg, positive, negative lipgloss.Color) Theme {
	return Theme{
		Primary:  primary,
		Muted:    muted,
		Border:   border,
		Positive: positive,
		Negative: negative,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			Background(primary).
			Padding(0, 2),
		InactiveTab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(border).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(fg).
			Background(border).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#7FB069"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#404040"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#ef4444"),
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#f38ba8"),
)

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
