package cmd

import (
	"errors"

	"github.com/pixstash/pixstash/internal/api"
	"github.com/pixstash/pixstash/internal/config"
	"github.com/pixstash/pixstash/internal/gallery"
	"github.com/pixstash/pixstash/internal/session"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in: run `pixstash login` first")

// app wires the config, session store, API client, and gallery service for
// one command invocation.
type app struct {
	cfg     *config.Config
	session *session.Store
	gallery *gallery.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.APIURL, store)

	return &app{
		cfg:     cfg,
		session: store,
		gallery: gallery.NewService(client),
	}, nil
}

// requireAuth gates authenticated command groups. It runs on every
// invocation and consults the persisted session fresh each time, so a token
// cleared by a 401 in an earlier invocation redirects to login here. A 401
// during the command itself still completes that command's error path
// normally; it is the next guarded invocation that gets turned away.
func requireAuth(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := session.NewStore(cfg.StateDir)
	if err != nil {
		return err
	}

	if !store.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}
