// Package draft tracks the live state of one draft: its status, scheduled
// start, and the cumulative pick list.
package draft

import (
	"context"
	"log/slog"
	"time"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/logging"
	"draft-companion/internal/providers"
)

const resumePollInterval = time.Second

// Tracker polls the draft resource and remembers the previous pick list so
// callers can tell whether anything changed since the last cycle. Poll
// errors propagate untouched; a failed cycle is retried by the next tick,
// not by the tracker.
type Tracker struct {
	provider providers.DraftProvider
	draftID  string
	logger   *slog.Logger

	info      picks.DraftInfo
	picks     []picks.Pick
	lastPicks []picks.Pick

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewTracker constructs a tracker for one draft id.
func NewTracker(provider providers.DraftProvider, draftID string, logger *slog.Logger) *Tracker {
	return &Tracker{
		provider: provider,
		draftID:  draftID,
		logger:   logger,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Poll refreshes the draft info and pick list. The previous pick list is
// saved before fetching so HasNewPicks compares this cycle against the
// last successful one.
func (t *Tracker) Poll(ctx context.Context) (picks.DraftInfo, []picks.Pick, error) {
	info, err := t.provider.FetchDraft(ctx, t.draftID)
	if err != nil {
		return picks.DraftInfo{}, nil, err
	}

	pickList, err := t.provider.FetchDraftPicks(ctx, t.draftID)
	if err != nil {
		return picks.DraftInfo{}, nil, err
	}

	t.lastPicks = t.picks
	t.picks = pickList
	t.info = info
	return info, pickList, nil
}

// HasNewPicks reports whether the latest poll observed a different pick
// sequence than the one before it.
func (t *Tracker) HasNewPicks() bool {
	if len(t.picks) != len(t.lastPicks) {
		return true
	}
	for i := range t.picks {
		if t.picks[i] != t.lastPicks[i] {
			return true
		}
	}
	return false
}

// Info returns the draft info from the latest poll.
func (t *Tracker) Info() picks.DraftInfo {
	return t.info
}

// Picks returns the pick list from the latest poll.
func (t *Tracker) Picks() []picks.Pick {
	return t.picks
}

// AwaitStart blocks until the draft's scheduled start time. A draft with
// no scheduled start returns immediately; the caller keeps polling until
// the status changes. A start time already in the past is logged and
// returns immediately.
func (t *Tracker) AwaitStart(ctx context.Context) error {
	start := t.info.StartTime
	if start == nil {
		logging.Info(t.logger, "no start time set, waiting for draft to start",
			slog.String(logging.FieldDraftID, t.draftID))
		return nil
	}

	wait := start.Sub(t.now())
	if wait <= 0 {
		logging.Warn(t.logger, "draft past scheduled start",
			slog.String(logging.FieldDraftID, t.draftID),
			slog.Duration("overdue", -wait),
			slog.String(logging.FieldStatus, string(t.info.Status)))
		return nil
	}

	logging.Info(t.logger, "waiting for draft to begin",
		slog.String(logging.FieldDraftID, t.draftID),
		slog.Duration("wait", wait))
	return t.sleep(ctx, wait)
}

// AwaitResume blocks while the draft is paused, repolling the status once
// per second until it changes or the context ends.
func (t *Tracker) AwaitResume(ctx context.Context) error {
	logging.Info(t.logger, "draft paused, waiting for status change",
		slog.String(logging.FieldDraftID, t.draftID))

	for {
		info, err := t.provider.FetchDraft(ctx, t.draftID)
		if err != nil {
			return err
		}
		t.info = info
		if info.Status != picks.StatusPaused {
			logging.Info(t.logger, "draft resumed",
				slog.String(logging.FieldDraftID, t.draftID),
				slog.String(logging.FieldStatus, string(info.Status)))
			return nil
		}
		if err := t.sleep(ctx, resumePollInterval); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
