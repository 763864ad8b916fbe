package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teamcal/teamcal-api/internal/config"
	"github.com/teamcal/teamcal-api/internal/digest"
	"github.com/teamcal/teamcal-api/internal/export"
	"github.com/teamcal/teamcal-api/internal/identity"
	"github.com/teamcal/teamcal-api/internal/platform/taskfile"
	"github.com/teamcal/teamcal-api/internal/service"
	"github.com/teamcal/teamcal-api/internal/service/auth"
	"github.com/teamcal/teamcal-api/internal/weather"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore *taskfile.Store
	accounts  identity.Provider

	sessions    auth.SessionService
	taskService *service.TaskService
	exporter    export.MonthExporter
	forecasts   *weather.Client

	scheduler *digest.Scheduler
}

// newApplication creates an application instance with all dependencies
// initialized and the digest scheduler started.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.sessions, err = auth.NewSessionService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("initializing session service: %w", err)
	}

	app.accounts, err = identity.NewFileProvider(cfg.Storage.AccountsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("initializing identity provider: %w", err)
	}

	app.taskStore = taskfile.NewStore(cfg.Storage.TasksFile, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.exporter = export.NewExcelExporter(app.taskStore, cfg.Storage.ExportDir, logger)
	app.forecasts = weather.NewClient(cfg.Weather, logger)

	if cfg.Digest.Enabled {
		loc, err := time.LoadLocation(cfg.Digest.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading digest timezone %q: %w", cfg.Digest.Timezone, err)
		}
		mailer := digest.NewSMTPMailer(cfg.Mail, logger)
		app.scheduler = digest.NewScheduler(
			app.taskService, app.accounts, mailer,
			cfg.Digest.Hour, cfg.Digest.Minute, loc, logger)
		if err := app.scheduler.Start(); err != nil {
			return nil, fmt.Errorf("starting digest scheduler: %w", err)
		}
	} else {
		logger.Info("digest scheduler disabled by configuration")
	}

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	app.logger.Info("application shutdown completed")
}
