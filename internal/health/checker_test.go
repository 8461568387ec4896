package health

import (
	"context"
	"testing"
	"time"
)

type stubChecker struct {
	result CheckResult
	sawCtx func(context.Context)
}

func (s stubChecker) Check(ctx context.Context) CheckResult {
	if s.sawCtx != nil {
		s.sawCtx(ctx)
	}
	return s.result
}

func TestProbeRunnerReady(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if !ready {
		t.Fatal("expected ready")
	}
	if len(results) != 1 || results[0].Name != "db" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestProbeRunnerUnready(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 0,
		stubChecker{result: CheckResult{Name: "db", Healthy: false, Error: "down"}},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready")
	}
	if len(results) != 1 || results[0].Error != "down" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestProbeRunnerDropsNilCheckers(t *testing.T) {
	runner := NewProbeRunner(0, 0, nil, NewDBChecker(nil))
	if runner.Checks() != 0 {
		t.Fatalf("expected no active checks, got %d", runner.Checks())
	}
	ready, results := runner.Ready(context.Background())
	if !ready || len(results) != 0 {
		t.Fatalf("expected ready with no results, got ready=%v results=%+v", ready, results)
	}
}

func TestProbeRunnerAppliesPerCheckTimeout(t *testing.T) {
	var deadlineSet bool
	runner := NewProbeRunner(50*time.Millisecond, 0, stubChecker{
		result: CheckResult{Name: "db", Healthy: true},
		sawCtx: func(ctx context.Context) { _, deadlineSet = ctx.Deadline() },
	})
	runner.Ready(context.Background())
	if !deadlineSet {
		t.Fatal("expected checker context to carry a deadline")
	}
}

func TestProbeRunnerStartupGrace(t *testing.T) {
	runner := NewProbeRunner(200*time.Millisecond, 2*time.Second,
		stubChecker{result: CheckResult{Name: "db", Healthy: true}},
	)
	ready, results := runner.Ready(context.Background())
	if ready {
		t.Fatal("expected unready during grace period")
	}
	if len(results) != 1 || results[0].Name != startupGraceCheck {
		t.Fatalf("unexpected grace results: %+v", results)
	}
}

func TestNilProbeRunnerIsReady(t *testing.T) {
	var runner *ProbeRunner
	if ready, _ := runner.Ready(context.Background()); !ready {
		t.Fatal("expected nil runner to report ready")
	}
}
