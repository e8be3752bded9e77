package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"paie/internal/app/server"
	"paie/internal/platform/config"
	"paie/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logr := logger.New(cfg)
	slog.SetDefault(logr)
	logr.Info("starting paie",
		"addr", cfg.Addr,
		"env", cfg.Environment,
		"log_level", cfg.LogLevel,
	)

	app, err := server.New(cfg, logr)
	if err != nil {
		return err
	}
	return app.Run(context.Background())
}
