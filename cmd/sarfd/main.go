// Command sarfd serves the derivation engine as a JSON API.
//
// Configuration is read from the YAML file named by SARF_CONFIG (default
// ./config.yaml) and SARF_* environment variables.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/sarf/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("sarfd: %v", err)
	}
}
