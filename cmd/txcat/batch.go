package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/csvview"
	"github.com/mkarlsen/txcat/internal/render"
)

func batchCmd() *cobra.Command {
	var noPreview bool

	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Predict categories for a CSV of transactions",
		Long: `Upload a CSV file for batch prediction. A preview of the first lines is
shown before the upload; the preview is cosmetic and the file is sent verbatim.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			th := newThemeManager().Current()
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Batch prediction failed: %v", err)))
				return err
			}

			if !noPreview {
				fmt.Println(th.Bold.Render("Preview"))
				fmt.Println(csvview.Render(csvview.Parse(string(data)), th))
				fmt.Println()
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = file.Close() }()

			bar := progressbar.DefaultBytes(int64(len(data)), "uploading")
			reader := io.TeeReader(file, bar)

			raw, err := client.PredictBatch(ctx, path, reader)
			_ = bar.Finish()
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Batch prediction failed: %v", err)))
				return err
			}

			// The batch response is rendered verbatim.
			fmt.Println(render.PrettyJSON(raw))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "Skip the client-side CSV preview")

	return cmd
}
