package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"toolcrib/internal/app"
	"toolcrib/internal/cli"

	logger "github.com/Bparsons0904/goLogger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.New("main").Function("run")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := app.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	commandLine := cli.New(app, os.Stdin, os.Stdout, os.Stderr)

	args := os.Args[1:]
	if cli.NeedsBackend(args) {
		if err := commandLine.Bootstrap(ctx); err != nil {
			log.Warn("continuing without a session", "error", err)
		}
	}

	if err := commandLine.Execute(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		return 1
	}
	return 0
}
