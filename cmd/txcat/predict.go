package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/common"
	"github.com/mkarlsen/txcat/internal/rawjson"
	"github.com/mkarlsen/txcat/internal/render"
	"github.com/mkarlsen/txcat/internal/session"
	"github.com/mkarlsen/txcat/internal/theme"
)

const predictBarWidth = 24

func predictCmd() *cobra.Command {
	var (
		addToIndex bool
		copyRaw    bool
		saveRaw    bool
		skipPrompt bool
		labelID    string
	)

	cmd := &cobra.Command{
		Use:   "predict <transaction>",
		Short: "Predict the category for a single transaction",
		Long:  `Submit one transaction description and show the predicted category, confidence, similar transactions, and rationale.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			th := newThemeManager().Current()

			transaction := strings.TrimSpace(strings.Join(args, " "))
			if transaction == "" {
				// Guard before any request is issued.
				fmt.Println(formatWarning(th, common.ErrEmptyTransaction.Error()))
				return nil
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			prediction, err := client.Predict(ctx, transaction)
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Prediction failed: %v", err)))
				return err
			}

			sess := session.New()
			sess.RecordPrediction(transaction, *prediction)

			printPrediction(th, sess)

			rawText := render.PrettyJSON(prediction.Raw)
			if copyRaw {
				if copyErr := rawjson.Copy(rawText); copyErr != nil {
					fmt.Println(formatWarning(th, fmt.Sprintf("copy failed: %v", copyErr)))
				} else {
					fmt.Println(formatInfo(th, "raw JSON copied to clipboard"))
				}
			}
			if saveRaw {
				path, saveErr := rawjson.Save(".", rawText)
				if saveErr != nil {
					return saveErr
				}
				fmt.Println(formatInfo(th, "raw JSON saved to "+path))
			}

			if addToIndex {
				return runAutoAdd(cmd, th, sess, labelID, skipPrompt)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&addToIndex, "add-to-index", false, "Save the prediction as a correction and add it to the search index")
	cmd.Flags().StringVar(&labelID, "label", "", "Fallback label when the prediction has no category")
	cmd.Flags().BoolVar(&copyRaw, "copy", false, "Copy the raw JSON response to the clipboard")
	cmd.Flags().BoolVar(&saveRaw, "save", false, "Save the raw JSON response to "+rawjson.DownloadFilename)
	cmd.Flags().BoolVar(&skipPrompt, "yes", false, "Skip the add-to-index confirmation prompt")

	return cmd
}

// printPrediction renders the result panel for the last prediction.
func printPrediction(th theme.Theme, sess *session.Session) {
	last := sess.LastPrediction()
	if last == nil {
		return
	}
	prediction := last.Response

	var lines []string
	lines = append(lines,
		th.Bold.Render(prediction.Category)+"  "+th.Subtitle.Render(render.Confidence(prediction.Confidence)))
	if prediction.LowConfidence {
		lines = append(lines, th.StatusWarning.Render("low confidence"))
	}
	if prediction.Unknown {
		lines = append(lines, th.StatusWarning.Render("unknown category"))
	}
	lines = append(lines, render.NeighborRows(prediction.Explanations, predictBarWidth, th)...)
	lines = append(lines, th.Subtitle.Render(render.Rationale(prediction)))
	lines = append(lines, th.Code.Render(render.PrettyJSON(prediction.Raw)))

	fmt.Println(th.BorderedBox.Render(strings.Join(lines, "\n")))
}

// runAutoAdd submits the last prediction as a correction, then tries the
// optional add-to-index endpoint. Index failure is informational only.
func runAutoAdd(cmd *cobra.Command, th theme.Theme, sess *session.Session, labelID string, skipPrompt bool) error {
	correction, err := sess.AutoAddCorrection(labelID)
	if err != nil {
		fmt.Println(formatWarning(th, err.Error()))
		return nil
	}

	if !skipPrompt && !confirm(fmt.Sprintf("Save %q as %q and add it to the index?", correction.Transaction, correction.CorrectLabel)) {
		fmt.Println(formatInfo(th, "cancelled"))
		return nil
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := client.Correct(ctx, correction); err != nil {
		fmt.Println(formatError(th, fmt.Sprintf("Correction failed: %v", err)))
		return err
	}

	if indexErr := client.AddToIndex(ctx, correction); indexErr != nil {
		fmt.Println(formatInfo(th, fmt.Sprintf("Correction saved; indexing skipped (%v)", indexErr)))
		return nil
	}

	fmt.Println(formatSuccess(th, "Correction saved and added to index"))
	return nil
}
