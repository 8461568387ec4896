package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/transflower/firstwebapp/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/exemplar"
)

const meterName = "firstwebapp"

type AppMetrics struct {
	pageRenderCounter        metric.Int64Counter
	pageRenderDuration       metric.Float64Histogram
	pageRenderBytes          metric.Int64Histogram
	healthCheckResultCounter metric.Int64Counter
	healthCheckDuration      metric.Float64Histogram
	databaseStartupCounter   metric.Int64Counter
	databaseStartupDuration  metric.Float64Histogram
	toolCommandRuns          metric.Int64Counter
	toolCommandDuration      metric.Float64Histogram
	loadgenRequestsCounter   metric.Int64Counter
}

var (
	metricsMu  sync.RWMutex
	appMetrics *AppMetrics
)

var secondsBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

func InitMetrics(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sdkmetric.MeterProvider, error) {
	if !cfg.OTELMetricsEnabled {
		mp := sdkmetric.NewMeterProvider()
		otel.SetMeterProvider(mp)
		logger.Info("otel metrics disabled")
		return mp, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTELExporterOTLPEndpoint)}
	if cfg.OTELExporterOTLPInsecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create metric resource: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.OTELMetricsExportInterval))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
		sdkmetric.WithExemplarFilter(exemplar.TraceBasedFilter),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "page.render.duration"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: secondsBuckets},
			},
		)),
	)
	otel.SetMeterProvider(mp)

	m, err := newAppMetrics(mp.Meter(meterName))
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}
	metricsMu.Lock()
	appMetrics = m
	metricsMu.Unlock()

	logger.Info("otel metrics initialized", "endpoint", cfg.OTELExporterOTLPEndpoint)
	return mp, nil
}

func newAppMetrics(meter metric.Meter) (*AppMetrics, error) {
	m := &AppMetrics{}
	var err error
	if m.pageRenderCounter, err = meter.Int64Counter("page.render.events"); err != nil {
		return nil, err
	}
	if m.pageRenderDuration, err = meter.Float64Histogram("page.render.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of page template execution in seconds"),
	); err != nil {
		return nil, err
	}
	if m.pageRenderBytes, err = meter.Int64Histogram("page.render.bytes",
		metric.WithUnit("By"),
		metric.WithDescription("Size of rendered page bodies"),
	); err != nil {
		return nil, err
	}
	if m.healthCheckResultCounter, err = meter.Int64Counter("health.check.results"); err != nil {
		return nil, err
	}
	if m.healthCheckDuration, err = meter.Float64Histogram("health.check.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of health dependency checks in seconds"),
	); err != nil {
		return nil, err
	}
	if m.databaseStartupCounter, err = meter.Int64Counter("database.startup.events"); err != nil {
		return nil, err
	}
	if m.databaseStartupDuration, err = meter.Float64Histogram("database.startup.duration", metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if m.toolCommandRuns, err = meter.Int64Counter("tool.command.runs"); err != nil {
		return nil, err
	}
	if m.toolCommandDuration, err = meter.Float64Histogram("tool.command.duration", metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if m.loadgenRequestsCounter, err = meter.Int64Counter("loadgen.requests"); err != nil {
		return nil, err
	}
	return m, nil
}

func currentMetrics() *AppMetrics {
	metricsMu.RLock()
	defer metricsMu.RUnlock()
	return appMetrics
}

func RecordPageRender(ctx context.Context, page, outcome string, duration time.Duration, bytes int) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.pageRenderCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", page),
		attribute.String("outcome", outcome),
	))
	m.pageRenderDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("page", page),
	))
	if outcome == "success" {
		m.pageRenderBytes.Record(ctx, int64(bytes), metric.WithAttributes(
			attribute.String("page", page),
		))
	}
}

func RecordHealthCheckResult(ctx context.Context, check, outcome string) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.healthCheckResultCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("check", check),
		attribute.String("outcome", outcome),
	))
}

func RecordHealthCheckDuration(ctx context.Context, check string, duration time.Duration) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.healthCheckDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("check", check),
	))
}

func RecordDatabaseStartupEvent(ctx context.Context, phase, outcome string) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.databaseStartupCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("phase", phase),
		attribute.String("outcome", outcome),
	))
}

func RecordDatabaseStartupDuration(ctx context.Context, phase string, duration time.Duration) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.databaseStartupDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("phase", phase),
	))
}

func RecordToolCommandRun(ctx context.Context, tool, command, outcome string) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.toolCommandRuns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	))
}

func RecordToolCommandDuration(ctx context.Context, tool, command, outcome string, duration time.Duration) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.toolCommandDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("command", command),
		attribute.String("outcome", outcome),
	))
}

func RecordLoadgenRequest(ctx context.Context, statusClass, profile string) {
	m := currentMetrics()
	if m == nil {
		return
	}
	m.loadgenRequestsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status_class", statusClass),
		attribute.String("profile", profile),
	))
}
