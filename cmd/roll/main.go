// Package main provides a CLI that rolls dice expressions and prints JSON.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	rollcmd "github.com/louisbranch/dicebot/internal/cmd/roll"
	"github.com/louisbranch/dicebot/internal/platform/config"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(2, "Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rollcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
