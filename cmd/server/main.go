// Package main implements the entry point for the team calendar API
// server: team-scoped task lists over a durable JSON document, a daily
// emailed task digest, month exports to xlsx, and cached weather
// forecasts for calendar days.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/teamcal/teamcal-api/internal/config"
	"github.com/teamcal/teamcal-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.Setup(cfg.Server)
	logg.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"tasks_file", cfg.Storage.TasksFile,
		"digest_enabled", cfg.Digest.Enabled)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, logg)
	if err != nil {
		logg.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
