package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	// Authenticated command groups carry their own PersistentPreRunE; chain
	// them with the root's env/logging setup instead of replacing it.
	cobra.EnableTraverseRunHooks = true

	cmd := &cobra.Command{
		Use:   "pixstash",
		Short: "Client for the pixstash image gallery service",
		Long: `pixstash manages an image gallery hosted on a remote pixstash service.

Log in once, then browse, upload, categorize, and delete images from the
command line. The session token is stored locally and reused until you log
out or the service rejects it.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newImagesCmd())
	cmd.AddCommand(newCategoriesCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
