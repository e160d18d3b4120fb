package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pixstash/pixstash/internal/gallery"
	"github.com/pixstash/pixstash/internal/listing"
	"github.com/pixstash/pixstash/internal/models"
	"github.com/spf13/cobra"
)

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "images",
		Short:             "Browse and manage gallery images",
		PersistentPreRunE: requireAuth,
	}

	cmd.AddCommand(newImagesListCmd())
	cmd.AddCommand(newImagesUploadCmd())
	cmd.AddCommand(newImagesDeleteCmd())
	cmd.AddCommand(newImagesGetCmd())

	return cmd
}

// newImageController builds the listing controller the image commands share.
func newImageController(a *app) *listing.Controller[models.Image] {
	fetch := func(ctx context.Context, category string, page, limit int) ([]models.Image, models.Pagination, error) {
		return a.gallery.ListImages(ctx, gallery.ListParams{
			Category: category,
			Page:     page,
			Limit:    limit,
		})
	}
	return listing.NewController(fetch, a.cfg.PageSize)
}

func newImagesListCmd() *cobra.Command {
	var category string
	var page int
	var limit int
	var allPages bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List images, optionally filtered by category",
		Example: `  # First page of everything
  pixstash images list

  # Page 3 of one category
  pixstash images list --category nature --page 3

  # Every page, as JSON
  pixstash images list --all-pages --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if limit < 1 {
				limit = a.cfg.PageSize
			}
			fetch := func(ctx context.Context, cat string, p, l int) ([]models.Image, models.Pagination, error) {
				return a.gallery.ListImages(ctx, gallery.ListParams{Category: cat, Page: p, Limit: l})
			}
			ctrl := listing.NewController(fetch, limit)

			if err := ctrl.SetFilter(cmd.Context(), category); err != nil {
				return err
			}
			if page > 1 {
				if err := ctrl.SetPage(cmd.Context(), page); err != nil {
					return err
				}
				if ctrl.Page() != page {
					return fmt.Errorf("page %d is out of range (1-%d)", page, ctrl.Pagination().TotalPages)
				}
			}

			images := ctrl.Items()
			if allPages {
				for ctrl.Pagination().HasNextPage {
					if err := ctrl.GoToNextPage(cmd.Context()); err != nil {
						return err
					}
					images = append(images, ctrl.Items()...)
				}
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(images)
			}

			printImages(images)
			if !allPages {
				printPageFooter(ctrl.Pagination())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category id or name")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page to fetch")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Page size (default from config)")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "Fetch every page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func printImages(images []models.Image) {
	if len(images) == 0 {
		fmt.Println("No images found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tCREATED")
	for _, img := range images {
		category := img.Category.Name
		if category == "" {
			category = img.Category.ID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", img.ID, img.Title, category, img.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func printPageFooter(p models.Pagination) {
	if p.TotalRecords == 0 {
		return
	}
	fmt.Printf("\nPage %d of %d (%d images total)\n", p.CurrentPage, p.TotalPages, p.TotalRecords)
}

func newImagesUploadCmd() *cobra.Command {
	var title string
	var category string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image",
		Long: `Uploads an image file to the gallery. Title and category are required,
and files over 10 MiB are rejected before any request is made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			created, err := a.gallery.Upload(cmd.Context(), gallery.UploadInput{
				Title:    title,
				Category: category,
				FilePath: args[0],
			})
			if err != nil {
				return err
			}

			slog.Info("Image uploaded", "id", created.ID, "title", created.Title)
			fmt.Printf("Uploaded %s (id %s)\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Image title (required)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category id (required)")

	return cmd
}

func newImagesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, fmt.Sprintf("Delete image %s?", args[0])) {
				fmt.Println("Aborted")
				return nil
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.gallery.DeleteImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted image %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newImagesGetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Download an image's stored bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			// The listing response is the only place the storage URL lives,
			// so resolve the id through a one-off paged scan.
			img, err := findImage(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}

			data, err := a.gallery.DownloadImage(cmd.Context(), *img)
			if err != nil {
				return err
			}

			if output == "" {
				output = img.StorageKey
				if output == "" {
					output = img.ID
				}
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write image file: %w", err)
			}

			fmt.Printf("Saved %s (%d bytes)\n", output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: storage key)")

	return cmd
}

func findImage(ctx context.Context, a *app, id string) (*models.Image, error) {
	ctrl := newImageController(a)
	if err := ctrl.Fetch(ctx); err != nil {
		return nil, err
	}

	for {
		for _, img := range ctrl.Items() {
			if img.ID == id {
				return &img, nil
			}
		}
		if !ctrl.Pagination().HasNextPage {
			return nil, fmt.Errorf("image %s not found", id)
		}
		if err := ctrl.GoToNextPage(ctx); err != nil {
			return nil, err
		}
	}
}

// confirm asks for an explicit yes on the command's stdin.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
