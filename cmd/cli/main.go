package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/ecotracker/internal/cli"
	"github.com/dmitrijs2005/ecotracker/internal/config"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
)

func slogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel(cfg.LogLevel)})
	log := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
