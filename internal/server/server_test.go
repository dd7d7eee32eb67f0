package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"draft-companion/internal/config"
	"draft-companion/internal/domain/picks"
	"draft-companion/internal/metrics"
	"draft-companion/internal/poller"
	"draft-companion/internal/providers/fixture"
	"draft-companion/internal/store"
)

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

func fixtureConfig() config.Config {
	return config.Config{
		Port:         "0",
		PollInterval: config.Duration(5 * time.Millisecond),
		Provider:     "fixture",
		Redraft:      true,
		DraftID:      fixture.DraftID,
	}
}

func TestServerServesDraftFromFixtureProvider(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newServerWithMetrics(fixtureConfig(), nil, metrics.NewRecorder())
	if err := srv.startPolling(ctx); err != nil {
		t.Fatalf("startPolling failed: %v", err)
	}
	defer srv.gracefulShutdown()

	deadline := time.Now().Add(2 * time.Second)
	for srv.store.Snapshot() == nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for first snapshot")
		}
		time.Sleep(5 * time.Millisecond)
	}

	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /healthz, got %d", healthRec.Code)
	}

	draftRec := httptest.NewRecorder()
	router.ServeHTTP(draftRec, httptest.NewRequest(http.MethodGet, "/draft", nil))
	if draftRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /draft, got %d", draftRec.Code)
	}

	var info picks.DraftInfo
	if err := json.NewDecoder(draftRec.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode draft response: %v", err)
	}
	if info.DraftID != fixture.DraftID {
		t.Fatalf("expected draft id %q, got %q", fixture.DraftID, info.DraftID)
	}
}

func TestServerReadyAfterFirstPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newServerWithMetrics(fixtureConfig(), nil, metrics.NewRecorder())

	readyRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if readyRec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before bootstrap, got %d", readyRec.Code)
	}

	if err := srv.startPolling(ctx); err != nil {
		t.Fatalf("startPolling failed: %v", err)
	}
	defer srv.gracefulShutdown()

	deadline := time.Now().Add(2 * time.Second)
	for {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		if rec.Code == http.StatusOK {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("readiness never reached 200, last code %d", rec.Code)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestStartPollingFailsWithoutDraftOrLeague(t *testing.T) {
	cfg := fixtureConfig()
	cfg.DraftID = ""

	srv := newServerWithMetrics(cfg, nil, metrics.NewRecorder())
	if err := srv.startPolling(context.Background()); err == nil {
		t.Fatal("expected bootstrap error when nothing identifies the draft")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	httpSrv := &stubHTTPServer{addr: ":0"}
	plr := &stubPoller{}
	srv := newServerWithDeps(config.Config{Port: "0"}, nil, store.NewMemoryStore(), httpSrv, plr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Run bootstraps via startPolling, which fails without a draft id and
	// cancels the context itself.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if httpSrv.shutdownCalls == 0 {
		t.Fatal("expected http server shutdown")
	}
}

func TestGracefulShutdownStopsPollerAndServer(t *testing.T) {
	httpSrv := &stubHTTPServer{addr: ":0"}
	plr := &stubPoller{err: context.DeadlineExceeded}
	srv := newServerWithDeps(config.Config{Port: "0"}, nil, store.NewMemoryStore(), httpSrv, plr)

	srv.gracefulShutdown()

	if plr.stopCalls != 1 {
		t.Fatalf("expected 1 poller stop, got %d", plr.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected 1 http shutdown, got %d", httpSrv.shutdownCalls)
	}
}

func TestPollerStatusBeforeBootstrapIsZero(t *testing.T) {
	srv := newServerWithMetrics(fixtureConfig(), nil, metrics.NewRecorder())
	status := srv.pollerStatus()
	if status.PicksSeen != 0 || status.ConsecutiveFailures != 0 || status.IsReady() {
		t.Fatalf("expected zero status before bootstrap, got %+v", status)
	}
}
