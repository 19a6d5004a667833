package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/npillmayer/sarf"
	"github.com/npillmayer/sarf/internal/config"
	"github.com/npillmayer/sarf/internal/server"
	"github.com/npillmayer/sarf/linefile"
)

// OpenEngine loads the configured line files into a new engine. Rejected
// lines are logged as warnings and do not fail the load.
func OpenEngine(cfg *config.Config, logger *slog.Logger) (*sarf.Engine, error) {
	e, counts, err := linefile.Open(cfg.Engine.Options(cfg.Data.RootsFile), cfg.Data.RootsFile, cfg.Data.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}
	for _, rejected := range counts.Rejected {
		logger.Warn("line skipped", slog.String("error", rejected.Error()))
	}
	logger.Info("engine loaded",
		slog.Int("roots", counts.Roots),
		slog.Int("patterns", counts.Patterns),
		slog.Int("skipped", len(counts.Rejected)),
	)
	return e, nil
}

// Run is the entry point of the server. It loads configuration, sets up
// logging and tracing, loads the engine and serves HTTP until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	SetupTracing(cfg.Log, os.Stderr)

	e, err := OpenEngine(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(e, cfg.Server, logger)
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}
