package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/transflower/firstwebapp/internal/config"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	otlploggrpc "go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/trace"
)

// fanoutHandler hands each record to every enabled child. The stdout JSON
// handler and the otelslog bridge are the only two children in practice.
type fanoutHandler []slog.Handler

func (h fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(h, func(c slog.Handler) bool { return c.Enabled(ctx, level) })
}

func (h fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, c := range h {
		if c.Enabled(ctx, r.Level) {
			errs = append(errs, c.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.each(func(c slog.Handler) slog.Handler { return c.WithAttrs(attrs) })
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	return h.each(func(c slog.Handler) slog.Handler { return c.WithGroup(name) })
}

func (h fanoutHandler) each(fn func(slog.Handler) slog.Handler) fanoutHandler {
	out := make(fanoutHandler, len(h))
	for i, c := range h {
		out[i] = fn(c)
	}
	return out
}

// traceContextHandler stamps trace_id/span_id when ctx carries a valid span.
type traceContextHandler struct {
	next slog.Handler
}

func (h traceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h traceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.next.Handle(ctx, r)
}

func (h traceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceContextHandler{next: h.next.WithAttrs(attrs)}
}

func (h traceContextHandler) WithGroup(name string) slog.Handler {
	return traceContextHandler{next: h.next.WithGroup(name)}
}

var (
	loggerMu     sync.RWMutex
	globalLogger *slog.Logger
	logOutput    io.Writer = os.Stdout
)

// NewLogger returns the logger installed by InitLogger, or a plain JSON
// logger when the app has not been wired yet (tools, tests).
func NewLogger() *slog.Logger {
	loggerMu.RLock()
	l := globalLogger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	return slog.New(jsonHandler(slog.LevelInfo))
}

func NewBootstrapLogger(cfg *config.Config) *slog.Logger {
	return slog.New(jsonHandler(parseLogLevel(cfg.OTELLogLevel)))
}

// InitLogger builds the app logger, installs it as slog's default and
// returns it. Every line carries service, env and site.
func InitLogger(cfg *config.Config, lp *sdklog.LoggerProvider) *slog.Logger {
	var h slog.Handler = jsonHandler(parseLogLevel(cfg.OTELLogLevel))
	if cfg.OTELLogsEnabled && lp != nil {
		h = fanoutHandler{h, otelslog.NewHandler(cfg.OTELServiceName, otelslog.WithLoggerProvider(lp))}
	}
	l := slog.New(traceContextHandler{next: h}).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.Env),
		slog.String("site", cfg.SiteName),
	)

	loggerMu.Lock()
	globalLogger = l
	loggerMu.Unlock()
	slog.SetDefault(l)
	return l
}

func jsonHandler(level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: level})
}

func InitLogs(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdklog.LoggerProvider, error) {
	if !cfg.OTELLogsEnabled {
		logger.Info("otel logs disabled")
		return nil, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp log exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create logs resource: %w", err)
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	logger.Info("otel logs initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return lp, nil
}

func parseLogLevel(v string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
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
