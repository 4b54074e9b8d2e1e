package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/txcat/internal/api"
	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/render"
	"github.com/mkarlsen/txcat/internal/theme"
)

func taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Manage the categorization taxonomy",
		Long:  `List the current taxonomy, upload a replacement, or rebuild the search index.`,
	}

	cmd.AddCommand(taxonomyListCmd())
	cmd.AddCommand(taxonomyUploadCmd())
	cmd.AddCommand(taxonomyRebuildCmd())

	return cmd
}

func taxonomyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all category labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := newThemeManager().Current()

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			taxonomy, err := client.GetTaxonomy(cmd.Context())
			if err != nil {
				// Failure still renders the sentinel option and placeholders.
				printTaxonomy(th, nil)
				fmt.Println(formatError(th, err.Error()))
				return err
			}

			printTaxonomy(th, taxonomy)
			return nil
		},
	}
}

func taxonomyUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.json>",
		Short: "Upload a replacement taxonomy",
		Long:  `Upload a taxonomy file. On success the taxonomy is reloaded and displayed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			th := newThemeManager().Current()
			path := args[0]

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			file, err := os.Open(path)
			if err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Taxonomy upload failed: %v", err)))
				return err
			}
			defer func() { _ = file.Close() }()

			info, err := file.Stat()
			if err != nil {
				return fmt.Errorf("failed to stat file: %w", err)
			}

			bar := progressbar.DefaultBytes(info.Size(), "uploading")
			reader := io.TeeReader(file, bar)

			if _, err := client.UploadTaxonomy(ctx, path, reader); err != nil {
				_ = bar.Finish()
				fmt.Println(formatError(th, fmt.Sprintf("Taxonomy upload failed: %v", err)))
				return err
			}
			_ = bar.Finish()

			fmt.Println(formatSuccess(th, "Taxonomy uploaded"))
			return reloadTaxonomy(cmd, th, client)
		},
	}
}

func taxonomyRebuildCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the backend search index",
		Long:  `Ask the backend to rebuild its search index. This is expensive; a confirmation is required.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := newThemeManager().Current()

			if !force && !confirm("Rebuild the search index? This can be slow and expensive.") {
				fmt.Println(formatInfo(th, "cancelled"))
				return nil
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if _, err := client.RebuildIndex(cmd.Context()); err != nil {
				fmt.Println(formatError(th, fmt.Sprintf("Index rebuild failed: %v", err)))
				return err
			}

			fmt.Println(formatSuccess(th, "Index rebuilt"))
			return reloadTaxonomy(cmd, th, client)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

// reloadTaxonomy refreshes and displays the taxonomy after an upload or
// rebuild. A failed reload is reported but leaves the command successful;
// the mutation itself already happened.
func reloadTaxonomy(cmd *cobra.Command, th theme.Theme, client *api.Client) error {
	taxonomy, err := client.GetTaxonomy(cmd.Context())
	if err != nil {
		printTaxonomy(th, nil)
		fmt.Println(formatWarning(th, fmt.Sprintf("reload: %v", err)))
		return nil
	}
	printTaxonomy(th, taxonomy)
	return nil
}

// printTaxonomy renders the label list plus model/index metadata. A nil
// taxonomy renders the sentinel option and placeholder fields.
func printTaxonomy(th theme.Theme, taxonomy *model.Taxonomy) {
	modelName, indexCount := render.ModelInfo(taxonomy)
	fmt.Println(th.Subtitle.Render(fmt.Sprintf("model: %s · indexed: %s", modelName, indexCount)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\n", th.Bold.Render("ID"), th.Bold.Render("Name"))
	fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 4), strings.Repeat("-", 24))

	for _, option := range render.TaxonomyOptions(taxonomy) {
		name := option.Label
		if option.Value != "" {
			name = strings.TrimPrefix(option.Label, option.Value+" — ")
		}
		fmt.Fprintf(w, "%s\t%s\n", option.Value, name)
	}
}
