// Command sarf is an interactive menu over the derivation engine.
//
// It loads the same configuration as sarfd and logs to stderr, so the
// menu on stdout stays readable.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/npillmayer/sarf/internal/app"
	"github.com/npillmayer/sarf/internal/config"
	"github.com/npillmayer/sarf/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)
	app.SetupTracing(cfg.Log, os.Stderr)

	e, err := app.OpenEngine(cfg, logger)
	if err != nil {
		logger.Error("load data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := shell.New(e, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error("read input", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
