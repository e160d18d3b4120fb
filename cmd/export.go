package cmd

import (
	"fmt"
	"log/slog"

	"github.com/pixstash/pixstash/internal/export"
	"github.com/pixstash/pixstash/internal/models"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var category string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the image listing to a dataset file",
		Long: `Walks every page of the (optionally filtered) image listing and writes
the collection as a dataset file. The format is picked from the output
extension: .parquet for Parquet, .jsonl or .json for JSON Lines.`,
		Example: `  # Everything, as Parquet
  pixstash export --output gallery.parquet

  # One category, as JSONL
  pixstash export --category nature --output nature.jsonl`,
		PersistentPreRunE: requireAuth,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctrl := newImageController(a)
			if err := ctrl.SetFilter(cmd.Context(), category); err != nil {
				return err
			}

			var images []models.Image
			images = append(images, ctrl.Items()...)
			for ctrl.Pagination().HasNextPage {
				if err := ctrl.GoToNextPage(cmd.Context()); err != nil {
					return err
				}
				images = append(images, ctrl.Items()...)
			}

			slog.Info("Fetched listing", "images", len(images), "pages", ctrl.Pagination().TotalPages)

			if err := export.Write(output, export.FromImages(images)); err != nil {
				return err
			}

			fmt.Printf("Exported %d images to %s\n", len(images), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category id or name")
	cmd.Flags().StringVarP(&output, "output", "o", "gallery.parquet", "Output file (.parquet, .jsonl)")

	return cmd
}
