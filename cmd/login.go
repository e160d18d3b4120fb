package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the gallery service",
		Long: `Logs in to the gallery service and stores the returned session token
in the state directory. The token is reused by every other command until
you log out or the service rejects it.`,
		Example: `  # Log in with flags
  pixstash login --email you@example.com --password secret

  # Or keep credentials in the environment / a .env file
  PIXSTASH_EMAIL=you@example.com PIXSTASH_PASSWORD=secret pixstash login`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = os.Getenv("PIXSTASH_EMAIL")
			}
			if password == "" {
				password = os.Getenv("PIXSTASH_PASSWORD")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			resp, err := a.gallery.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := a.session.Login(resp.AccessToken); err != nil {
				return err
			}

			slog.Debug("Session token stored", "state_dir", a.cfg.StateDir)
			fmt.Printf("Logged in as %s\n", resp.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (or PIXSTASH_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (or PIXSTASH_PASSWORD)")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if err := a.session.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show session and connection status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			fmt.Printf("Service:   %s\n", a.cfg.APIURL)
			fmt.Printf("State dir: %s\n", a.cfg.StateDir)
			if a.session.IsAuthenticated() {
				fmt.Println("Session:   logged in")
			} else {
				fmt.Println("Session:   not logged in")
			}
			return nil
		},
	}
}
