package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/transflower/firstwebapp/internal/config"
	"github.com/transflower/firstwebapp/internal/database"
	"github.com/transflower/firstwebapp/internal/health"
	"github.com/transflower/firstwebapp/internal/observability"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	// DB is nil when DATABASE_URL is unset.
	DB        *gorm.DB
	Readiness *health.ProbeRunner
}

func New(cfg *config.Config, logger *slog.Logger, server *http.Server, runtime *observability.Runtime, db *gorm.DB, readiness *health.ProbeRunner) *App {
	return &App{Config: cfg, Logger: logger, Server: server, Observability: runtime, DB: db, Readiness: readiness}
}

// Serve blocks until the server stops. A graceful Shutdown is not an error.
func (a *App) Serve() error {
	a.Logger.Info("server starting", "addr", a.Server.Addr, "site", a.Config.SiteName, "database", a.DB != nil)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts down.
// A listener failure is returned even when the shutdown itself is clean.
func (a *App) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() { serveErr <- a.Serve() }()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("shutdown requested", "cause", context.Cause(ctx))
	case err := <-serveErr:
		if err != nil {
			a.Logger.Error("http server failed", "error", err)
			runErr = fmt.Errorf("serve: %w", err)
		}
	}
	return errors.Join(runErr, a.Shutdown(context.WithoutCancel(ctx)))
}

// Shutdown drains HTTP, flushes telemetry, then closes the database. Each
// stage gets its own budget carved out of cfg.ShutdownTimeout.
func (a *App) Shutdown(ctx context.Context) error {
	totalCtx, totalCancel := context.WithTimeout(ctx, a.Config.ShutdownTimeout)
	defer totalCancel()

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(totalCtx, a.Config.ShutdownHTTPDrainTimeout)
	if err := a.Server.Shutdown(httpCtx); err != nil {
		a.Logger.Error("failed to shutdown http server", "error", err)
		errs = append(errs, err)
	}
	httpCancel()

	if a.Observability != nil {
		obsCtx, obsCancel := context.WithTimeout(totalCtx, a.Config.ShutdownObservabilityTimeout)
		if err := a.Observability.Shutdown(obsCtx); err != nil {
			a.Logger.Error("failed to shutdown observability", "error", err)
			errs = append(errs, err)
		}
		obsCancel()
	}

	if err := database.Close(a.DB); err != nil {
		a.Logger.Error("failed to close database connection", "error", err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
