// Package main checks a project catalog and exits non-zero on failure.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/pbhende/portfolio/internal/cmd/catalogcheck"
	"github.com/pbhende/portfolio/internal/platform/config"
)

func main() {
	cfg, err := catalogcheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(config.ExitUsage, "Error: %v", err)
	}
	if err := catalogcheck.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
