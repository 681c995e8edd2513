package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/nestegg/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the viewer until the user quits or ctx is cancelled.
func Run(ctx context.Context, analysis *model.BankStatementAnalysis, cfg Config) error {
	program := tea.NewProgram(
		New(analysis, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
