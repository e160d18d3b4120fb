package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "categories",
		Short:             "Manage gallery categories",
		PersistentPreRunE: requireAuth,
	}

	cmd.AddCommand(newCategoriesListCmd())
	cmd.AddCommand(newCategoriesCreateCmd())
	cmd.AddCommand(newCategoriesUpdateCmd())
	cmd.AddCommand(newCategoriesDeleteCmd())

	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			categories, err := a.gallery.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(categories)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\n", cat.ID, cat.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func newCategoriesCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			created, err := a.gallery.CreateCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s (id %s)\n", created.Name, created.ID)
			return nil
		},
	}
}

func newCategoriesUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			updated, err := a.gallery.UpdateCategory(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed category %s to %s\n", updated.ID, updated.Name)
			return nil
		},
	}
}

func newCategoriesDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, fmt.Sprintf("Delete category %s?", args[0])) {
				fmt.Println("Aborted")
				return nil
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.gallery.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted category %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
