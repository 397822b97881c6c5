package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/pocket/internal/buildinfo"
	"github.com/dmitrijs2005/pocket/internal/client/cli"
	"github.com/dmitrijs2005/pocket/internal/client/config"
	"github.com/dmitrijs2005/pocket/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	buildinfo.PrintBuildData(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args[1:]

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	log, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 2
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	if err := cli.NewApp(cfg, log).Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "pocket: %v\n", err)
		return 1
	}
	return 0
}
