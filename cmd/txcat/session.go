package main

import (
	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/session"
	"github.com/mkarlsen/txcat/internal/tui"
)

func sessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "session",
		Aliases: []string{"tui"},
		Short:   "Start an interactive categorization session",
		Long: `Open the full-screen session: predict transactions, browse neighbor
explanations, submit corrections, preview and run CSV batches, and manage
the taxonomy without leaving the terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), tui.Config{
				Client:  client,
				Session: session.New(),
				Themes:  newThemeManager(),
			})
		},
	}
}
