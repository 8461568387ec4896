package observability

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/transflower/firstwebapp/internal/config"
)

func TestSamplerBounds(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{1, "AlwaysOnSampler"},
		{1.5, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range cases {
		desc := sampler(tc.ratio).Description()
		if !strings.HasPrefix(desc, "ParentBased{root:"+tc.want) {
			t.Fatalf("sampler(%v) = %q, want root %s", tc.ratio, desc, tc.want)
		}
	}
}

func TestInitRuntimeAllSignalsDisabled(t *testing.T) {
	cfg := &config.Config{
		OTELServiceName:           "firstwebapp",
		OTELEnvironment:           "test",
		OTELMetricsExportInterval: time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rt, err := InitRuntime(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("init runtime: %v", err)
	}
	if rt.LoggerProvider != nil {
		t.Fatal("expected no logger provider when otel logs are off")
	}
	if rt.MeterProvider == nil || rt.TracerProvider == nil {
		t.Fatalf("expected local meter and tracer providers, got %+v", rt)
	}
	if fields := otel.GetTextMapPropagator().Fields(); !slices.Contains(fields, "traceparent") {
		t.Fatalf("expected W3C trace context propagation, got %v", fields)
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNilRuntimeShutdown(t *testing.T) {
	var rt *Runtime
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestNewResourceCarriesSite(t *testing.T) {
	res, err := newResource(context.Background(), &config.Config{OTELServiceName: "firstwebapp", OTELEnvironment: "test", SiteName: "Transflower"})
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	found := map[string]string{}
	for _, kv := range res.Attributes() {
		found[string(kv.Key)] = kv.Value.Emit()
	}
	if found["service.name"] != "firstwebapp" || found["app.site"] != "Transflower" {
		t.Fatalf("unexpected resource attributes: %v", found)
	}
}
