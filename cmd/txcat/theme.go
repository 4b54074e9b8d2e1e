package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/theme"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or set the persisted theme",
		Long:      `With no argument, shows the active theme. Setting a theme persists it best-effort; a failed write falls back to the session only.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{theme.Dark, theme.Light, "toggle"},
		RunE: func(_ *cobra.Command, args []string) error {
			manager := newThemeManager()

			if len(args) == 0 {
				fmt.Println(manager.Mode())
				return nil
			}

			switch args[0] {
			case "toggle":
				manager.Toggle()
			case theme.Dark, theme.Light:
				manager.Apply(args[0])
			default:
				return fmt.Errorf("invalid theme %q (use dark, light, or toggle)", args[0])
			}

			th := manager.Current()
			fmt.Println(formatSuccess(th, "theme set to "+manager.Mode()))
			return nil
		},
	}
}
