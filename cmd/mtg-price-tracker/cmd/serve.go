package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mtg-price-tracker/internal/telemetry"
	"github.com/donaldgifford/mtg-price-tracker/pkg/logger"
)

// cycleDrainTimeout bounds how long shutdown waits for a running cycle to
// reach its next item boundary.
const cycleDrainTimeout = 2 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and watcher scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Telemetry, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("closing store", "error", err)
		}
	}()

	if cfg.Watcher.IsEnabled() {
		a.scheduler.Start()
		log.Info("watcher scheduled",
			"startup_delay", cfg.Watcher.StartupDelay,
			"interval", cfg.Watcher.Interval,
		)
	} else {
		log.Info("watcher scheduling disabled, cycles run only on demand")
	}

	e := newServer(a, &cfg.Server, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", addr, "version", Version)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	drainWatcher(a, log)

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// drainWatcher stops scheduling and waits for an in-flight cycle to stop
// at its next item boundary.
func drainWatcher(a *app, log *slog.Logger) {
	done := a.scheduler.Stop()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(cycleDrainTimeout)

	for {
		select {
		case <-deadline:
			log.Warn("watcher cycle still running at shutdown", "status", a.watcher.Status().Phase)
			return
		case <-ticker.C:
			if done.Err() != nil && !a.watcher.Running() {
				return
			}
		}
	}
}
