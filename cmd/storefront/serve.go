package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/fyf-cart/internal/config"
	"github.com/nikolayk812/fyf-cart/internal/httpapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the cart HTTP API",
		Long: `Run the cart HTTP API until SIGINT or SIGTERM.

In-flight requests get http.shutdown_timeout to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) (err error) {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close store: %w", closeErr))
		}
	}()

	if a.cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(a.engine, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("store", a.cfg.Store.Driver),
			zap.String("currency", a.cfg.Cart.Currency),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	return shutdown(srv, a.cfg.HTTP)
}

func shutdown(srv *http.Server, cfg config.HTTPConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}
