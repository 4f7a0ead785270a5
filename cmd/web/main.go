// Package main starts the SabhaEnabler marketing site.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/sabhaenabler/website/internal/cmd/web"
	"github.com/sabhaenabler/website/internal/platform/config"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.NewFlagSet(os.Args[0], flag.ContinueOnError), os.Args[1:])
	if err != nil {
		config.ExitOnParseError(err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
