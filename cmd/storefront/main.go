package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nikolayk812/fyf-cart/internal/cart"
	"github.com/nikolayk812/fyf-cart/internal/config"
	"github.com/nikolayk812/fyf-cart/internal/logger"
	"github.com/nikolayk812/fyf-cart/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "FYF storefront cart service",
		Long: `Serve and operate the FYF storefront cart.

Available subcommands:
  serve   - Run the cart HTTP API
  migrate - Apply PostgreSQL migrations
  cart    - Inspect and modify a cart from the terminal`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./config.yaml)")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newMigrateCmd(&configPath))
	rootCmd.AddCommand(newCartCmd(&configPath))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles what every command needs: configuration, a logger and an
// engine over the configured store.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *cart.Engine
	close  func() error
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	repo, closeRepo, err := repository.Open(ctx, cfg.Store)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("repository.Open: %w", err)
	}

	engine := cart.New(repo,
		cart.WithLogger(log),
		cart.WithCurrency(cfg.Cart.CurrencyUnit()),
		cart.WithObserver(cart.LogObserver(log)),
	)

	return &app{
		cfg:    cfg,
		logger: log,
		engine: engine,
		close: func() error {
			err := closeRepo()
			_ = log.Sync()
			return err
		},
	}, nil
}
