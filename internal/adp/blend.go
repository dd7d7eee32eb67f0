// Package adp produces the average-draft-position table used to order the
// player catalog. Redraft leagues blend the standard and PPR tables;
// rookie drafts use the rookie table as-is.
package adp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"draft-companion/internal/logging"
	"draft-companion/internal/providers"
)

const weightTolerance = 1e-9

// Weights sets the blend between the standard and PPR tables. They must
// sum to 1.
type Weights struct {
	Standard float64
	PPR      float64
}

// DefaultWeights approximate half-PPR scoring.
var DefaultWeights = Weights{Standard: 0.4, PPR: 0.6}

func (w Weights) validate() error {
	if math.Abs(w.Standard+w.PPR-1) > weightTolerance {
		return fmt.Errorf("adp: weights must sum to 1: standard=%v ppr=%v", w.Standard, w.PPR)
	}
	return nil
}

// Blender fetches and combines ADP tables from a single provider.
type Blender struct {
	provider providers.ADPProvider
	weights  Weights
	logger   *slog.Logger
}

// NewBlender constructs a Blender. Zero weights fall back to DefaultWeights.
func NewBlender(provider providers.ADPProvider, weights Weights, logger *slog.Logger) *Blender {
	if weights == (Weights{}) {
		weights = DefaultWeights
	}
	return &Blender{provider: provider, weights: weights, logger: logger}
}

// Table returns the ADP entries for the league format, sorted by ADP
// ascending. Redraft leagues get the weighted standard/PPR blend; dynasty
// rookie drafts get the rookie table directly.
func (b *Blender) Table(ctx context.Context, redraft bool) ([]providers.ADPEntry, error) {
	if redraft {
		return b.blend(ctx)
	}

	entries, err := b.provider.FetchADP(ctx, providers.ADPRookie)
	if err != nil {
		return nil, err
	}
	sortByADP(entries)
	return entries, nil
}

// blend inner-joins the standard and PPR tables on the provider's player
// id and weights the two ADP values. Players present in only one table are
// dropped; a row on the fringe of one format is not draftable signal.
func (b *Blender) blend(ctx context.Context) ([]providers.ADPEntry, error) {
	if err := b.weights.validate(); err != nil {
		logging.Error(b.logger, "invalid adp blend weights", err)
		return nil, err
	}

	standard, err := b.provider.FetchADP(ctx, providers.ADPStandard)
	if err != nil {
		return nil, fmt.Errorf("fetching standard adp: %w", err)
	}
	ppr, err := b.provider.FetchADP(ctx, providers.ADPPPR)
	if err != nil {
		return nil, fmt.Errorf("fetching ppr adp: %w", err)
	}

	pprByID := make(map[int]providers.ADPEntry, len(ppr))
	for _, entry := range ppr {
		pprByID[entry.ProviderID] = entry
	}

	blended := make([]providers.ADPEntry, 0, len(standard))
	for _, entry := range standard {
		match, ok := pprByID[entry.ProviderID]
		if !ok {
			continue
		}
		entry.ADP = b.weights.Standard*entry.ADP + b.weights.PPR*match.ADP
		blended = append(blended, entry)
	}

	logging.Info(b.logger, "blended adp tables",
		slog.Int("standard", len(standard)),
		slog.Int("ppr", len(ppr)),
		slog.Int(logging.FieldCount, len(blended)))

	sortByADP(blended)
	return blended, nil
}

func sortByADP(entries []providers.ADPEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ADP < entries[j].ADP })
}
