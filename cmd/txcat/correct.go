package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/render"
)

func correctCmd() *cobra.Command {
	var labelID string

	cmd := &cobra.Command{
		Use:   "correct <transaction>",
		Short: "Submit a corrected label for a transaction",
		Long:  `Record a (transaction, correct label) pair so the backend can improve future predictions.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th := newThemeManager().Current()

			transaction := strings.TrimSpace(strings.Join(args, " "))
			if transaction == "" {
				fmt.Println(formatWarning(th, common.ErrEmptyTransaction.Error()))
				return nil
			}
			if labelID == "" {
				fmt.Println(formatWarning(th, fmt.Sprintf("%v (use --label)", common.ErrNoLabel)))
				return nil
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			raw, err := client.Correct(cmd.Context(), model.Correction{
				Transaction:  transaction,
				CorrectLabel: labelID,
			})
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Correction failed: %v", err)))
				return err
			}

			fmt.Println(render.PrettyJSON(raw))
			fmt.Println(formatSuccess(th, "Correction recorded"))
			return nil
		},
	}

	cmd.Flags().StringVar(&labelID, "label", "", "The correct category label id")

	return cmd
}
