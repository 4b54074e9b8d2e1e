package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Client == nil {
		return fmt.Errorf("api client is required")
	}
	if cfg.Session == nil {
		return fmt.Errorf("session is required")
	}
	if cfg.Themes == nil {
		return fmt.Errorf("theme manager is required")
	}

	program := tea.NewProgram(NewModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("session error: %w", err)
	}
	return nil
}
