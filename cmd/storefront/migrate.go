package main

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/fyf-cart/internal/config"
	"github.com/nikolayk812/fyf-cart/internal/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations",
		Long: `Apply the embedded cart_items migrations to store.postgres_url.

Only the postgres store driver keeps a schema; other drivers need no migration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("config.Load: %w", err)
			}

			if cfg.Store.PostgresURL == "" {
				return errors.New("store.postgres_url is required")
			}

			if err := migrations.Up(cfg.Store.PostgresURL); err != nil {
				return fmt.Errorf("migrations.Up: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
