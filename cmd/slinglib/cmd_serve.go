package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/sling-library/internal/logger"
	"github.com/BruksfildServices01/sling-library/internal/routes"
)

const shutdownTimeout = 10 * time.Second

// slinglib serve: start the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		infra, cleanup, err := buildInfra(ctx, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.Default()
		routes.RegisterRoutes(r, infra, cfg)

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
			logger.Info("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
		if err := infra.Dispatcher.Close(shutdownCtx); err != nil {
			logger.Warn("audit queue not drained", "error", err)
		}
		return nil
	},
}
