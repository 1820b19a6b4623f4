package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/club-studio/internal/cli"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_STUDIO_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, appVersion, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
