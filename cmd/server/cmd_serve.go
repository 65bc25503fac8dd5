package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"startupboom/internal/api"
	"startupboom/internal/engine"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP dashboard server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Value.String() != "" {
		cfg.Server.Addr = f.Value.String()
	}
	shutdownTimeout, err := cfg.GetShutdownTimeout()
	if err != nil {
		return err
	}

	e := api.NewServer(cfg, engine.DefaultStore(), logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server ready", zap.String("addr", cfg.Server.Addr))
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	start := time.Now()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped", zap.Duration("took", time.Since(start)))
	return nil
}
