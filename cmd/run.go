package cmd

import (
	"fmt"
	"os"

	"github.com/certforge/certforge/internal/app"
	"github.com/certforge/certforge/internal/assets"
	"github.com/certforge/certforge/internal/builder"
	"github.com/certforge/certforge/internal/curriculum"
	"github.com/certforge/certforge/internal/llm"
	"github.com/certforge/certforge/internal/store"
	"github.com/certforge/certforge/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, wires the pipeline, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	opts := app.Options{}

	b, err := newBuilder(cmd, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Model provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generation will be unavailable.")
	} else {
		opts.Builder = b
	}

	return app.Run(opts)
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newBuilder constructs the full pipeline over the configured providers.
func newBuilder(cmd *cobra.Command, st *store.Store) (*builder.Builder, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := llm.NewClient(cmd.Context(), cfg, st.EventRepo())
	if err != nil {
		return nil, err
	}

	return builder.New(
		curriculum.New(client, curriculum.DefaultConfig()),
		assets.New(client, assets.DefaultConfig()),
		tutor.New(client, client, client),
		st.SessionRepo(),
	), nil
}
