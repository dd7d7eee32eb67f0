// Package poller drives the draft reconciliation loop: poll the draft on
// an interval, react to its status, and publish fresh snapshots when new
// picks arrive.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"draft-companion/internal/board"
	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/logging"
	"draft-companion/internal/metrics"
	"draft-companion/internal/reconcile"
	"draft-companion/internal/roster"
	"draft-companion/internal/users"
)

const defaultInterval = 5 * time.Second

// DraftTracker is the stateful view of one draft the loop drives.
type DraftTracker interface {
	Poll(ctx context.Context) (picks.DraftInfo, []picks.Pick, error)
	HasNewPicks() bool
	AwaitStart(ctx context.Context) error
	AwaitResume(ctx context.Context) error
}

// Publisher receives each reconciled snapshot for serving.
type Publisher interface {
	Publish(snapshot *board.Snapshot)
}

// SnapshotSink persists reconciled snapshots. Persistence failures are
// logged, not fatal; the in-memory snapshot is the source of truth.
type SnapshotSink interface {
	SaveSnapshot(ctx context.Context, snap *board.Snapshot) error
}

// Poller polls the draft on an interval and reconciles on change.
type Poller struct {
	tracker   DraftTracker
	catalog   []players.Player
	registry  *users.Registry
	publisher Publisher
	sink      SnapshotSink
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the polling loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	DraftStatus         picks.DraftStatus
	PicksSeen           int
	Completed           bool
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly. A completed draft stays ready; the final snapshot
// remains servable.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. The catalog is fixed for the lifetime of the
// loop; it refreshes at most daily upstream and never mid-draft.
func New(tracker DraftTracker, catalog []players.Player, registry *users.Registry, publisher Publisher, sink SnapshotSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		tracker:   tracker,
		catalog:   catalog,
		registry:  registry,
		publisher: publisher,
		sink:      sink,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled, Stop is called, or
// the draft completes.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle to warm the snapshot on boot.
		p.cycle(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.cycle(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// cycle runs one poll and reacts to the observed draft status.
func (p *Poller) cycle(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	info, pickList, err := p.tracker.Poll(ctx)
	p.metrics.RecordPollCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "draft poll failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start, info.Status, len(pickList))
	p.metrics.RecordPicksSeen(len(pickList))

	switch info.Status {
	case picks.StatusDrafting, picks.StatusComplete:
		if p.tracker.HasNewPicks() {
			p.reconcileAndPublish(ctx, info, pickList, start)
		}
		if info.Status.Terminal() {
			logging.Info(p.logger, "draft complete, stopping poller",
				slog.String(logging.FieldDraftID, info.DraftID),
				slog.Int(logging.FieldCount, len(pickList)))
			p.markCompleted()
			p.Stop(ctx)
		}
	case picks.StatusPreDraft:
		if err := p.tracker.AwaitStart(ctx); err != nil {
			logging.Error(p.logger, "wait for draft start interrupted", err)
		}
	case picks.StatusPaused:
		if err := p.tracker.AwaitResume(ctx); err != nil {
			logging.Error(p.logger, "wait for draft resume interrupted", err)
		}
	default:
		logging.Warn(p.logger, "unrecognized draft status, skipping cycle",
			slog.String(logging.FieldStatus, string(info.Status)))
	}
}

func (p *Poller) reconcileAndPublish(ctx context.Context, info picks.DraftInfo, pickList []picks.Pick, start time.Time) {
	enriched := reconcile.MergePicksWithPlayers(pickList, p.catalog, p.registry)
	remaining := reconcile.RemainingPlayers(p.catalog, enriched)

	snapshot := &board.Snapshot{
		Draft:     info,
		Picks:     enriched,
		Remaining: remaining,
		Rosters:   roster.BuildAll(enriched),
		UpdatedAt: p.now(),
	}

	if p.publisher != nil {
		p.publisher.Publish(snapshot)
	}
	if p.sink != nil {
		if err := p.sink.SaveSnapshot(ctx, snapshot); err != nil {
			logging.Error(p.logger, "snapshot persist failed", err)
		}
	}

	logging.Info(p.logger, "published draft snapshot",
		slog.String(logging.FieldStatus, string(info.Status)),
		slog.Int(logging.FieldCount, len(enriched)),
		slog.Int("remaining", len(remaining)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, status picks.DraftStatus, picksSeen int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.DraftStatus = status
	p.status.PicksSeen = picksSeen
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

func (p *Poller) markCompleted() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Completed = true
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
