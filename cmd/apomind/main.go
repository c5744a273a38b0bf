package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/apomind/apomind-cli/internal/cli"
	"github.com/apomind/apomind-cli/internal/config"
	"github.com/apomind/apomind-cli/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if os.Getenv("APOMIND_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "apomind:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "apomind:", err)
		os.Exit(1)
	}
}
