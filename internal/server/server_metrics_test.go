package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/preston-bernstein/nfl-hq-service/internal/config"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
	"github.com/preston-bernstein/nfl-hq-service/internal/teststubs"
	"github.com/preston-bernstein/nfl-hq-service/internal/testutil"
)

func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics addr :9999, got %s", srv.Addr())
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	srv, err := newServerWithMetrics(testConfig(), nil, &teststubs.StubProvider{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	defer func() { _ = shutdown(context.Background()) }()

	cfg := testConfig()
	cfg.Metrics.Enabled = true

	srv, err := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
}

func TestStandingsRequestsRecordCacheMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	srv, err := newServerWithMetrics(testConfig(), nil, &teststubs.StubProvider{}, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/api/standings", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/api/standings", nil), http.StatusOK)

	if got := rec.CacheOutcomes(metrics.CacheMiss); got != 1 {
		t.Fatalf("expected one miss, got %d", got)
	}
	if got := rec.CacheOutcomes(metrics.CacheHit); got != 1 {
		t.Fatalf("expected one hit, got %d", got)
	}
	if got := rec.ProviderCalls("stub"); got != 32 {
		t.Fatalf("expected one provider call per team, got %d", got)
	}
}
