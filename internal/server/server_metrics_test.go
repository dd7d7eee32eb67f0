package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"draft-companion/internal/config"
	"draft-companion/internal/metrics"
)

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{
			Enabled: true,
			Port:    "9999",
		},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatal("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics server on :9999, got %s", srv.Addr())
	}
}

func TestBuildMetricsFailureFallsBackToNoopRecorder(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unavailable")
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil {
		t.Fatal("expected fallback recorder")
	}
	if srv != nil || stop != nil {
		t.Fatal("expected no metrics server or shutdown on failure")
	}
}

func TestBuildMetricsReusesInjectedRecorder(t *testing.T) {
	rec := metrics.NewRecorder()
	got, srv, stop := buildMetrics(config.Config{}, nil, rec)
	if got != rec {
		t.Fatal("expected injected recorder to be returned")
	}
	if srv != nil || stop != nil {
		t.Fatal("expected no metrics server when recorder injected")
	}
}
