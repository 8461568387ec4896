package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/transflower/firstwebapp/internal/app"
	"github.com/transflower/firstwebapp/internal/config"
	"github.com/transflower/firstwebapp/internal/database"
	"github.com/transflower/firstwebapp/internal/fixtures"
	"github.com/transflower/firstwebapp/internal/health"
	"github.com/transflower/firstwebapp/internal/http/handler"
	"github.com/transflower/firstwebapp/internal/http/router"
	"github.com/transflower/firstwebapp/internal/observability"
	"github.com/transflower/firstwebapp/internal/web"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideReadinessProbeRunner,
)

var PageSet = wire.NewSet(
	fixtures.Load,
	wire.Bind(new(handler.DemoData), new(*fixtures.Demo)),
	provideTemplateRenderer,
	wire.Bind(new(web.Renderer), new(*web.TemplateRenderer)),
	handler.NewPageHandler,
)

var HTTPSet = wire.NewSet(
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

// provideRuntimeDB returns a nil *gorm.DB when no database is configured; the
// page routes never touch it.
func provideRuntimeDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if !cfg.DatabaseEnabled() {
		logger.Info("database disabled", "reason", "DATABASE_URL unset")
		return nil, nil
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	logger.Info("database ready", "dialect", database.Dialect(cfg.DatabaseURL))
	return db, nil
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB) *health.ProbeRunner {
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, health.NewDBChecker(db))
}

func provideTemplateRenderer(cfg *config.Config) (*web.TemplateRenderer, error) {
	return web.NewTemplateRenderer(cfg.SiteName)
}

func provideRouterDependencies(pages *handler.PageHandler, readiness *health.ProbeRunner, cfg *config.Config) router.Dependencies {
	return router.Dependencies{
		PageHandler:    pages,
		Readiness:      readiness,
		EnableOTelHTTP: cfg.OTelHTTPEnabled(),
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
