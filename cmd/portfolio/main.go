// Package main starts the portfolio web server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	portfoliocmd "github.com/pbhende/portfolio/internal/cmd/portfolio"
	"github.com/pbhende/portfolio/internal/platform/config"
)

func main() {
	cfg, err := portfoliocmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "parse flags: %v", err)
	}
	log.SetPrefix("[PORTFOLIO] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := portfoliocmd.Run(ctx, cfg); err != nil {
		log.Printf("failed to serve: %v", err)
		stop()
		config.Exitf("Error: %v", err)
	}
}
