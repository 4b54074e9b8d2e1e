package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/render"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the backend's settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := newThemeManager().Current()

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.GetSettings(cmd.Context())
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Settings fetch failed: %v", err)))
				return err
			}

			fmt.Println(render.PrettyJSON(raw))
			return nil
		},
	}
}
