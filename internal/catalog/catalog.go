// Package catalog assembles the ranked player catalog consumed by every
// reconcile cycle: the cleaned platform player list, ordered by ADP, with
// manual draft tiers joined on top.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"draft-companion/internal/domain/players"
	"draft-companion/internal/logging"
	"draft-companion/internal/providers"
	"draft-companion/internal/reconcile"
)

// ADPSource supplies the format-appropriate ADP table.
type ADPSource interface {
	Table(ctx context.Context, redraft bool) ([]providers.ADPEntry, error)
}

// TierEntry assigns a manual tier to a player by normalized name. Rank
// orders players within a tier.
type TierEntry struct {
	NormalizedName string
	Tier           int
	Rank           int
}

// TierSource supplies manual tier assignments. Implementations return an
// empty slice when no tiers have been configured.
type TierSource interface {
	Tiers(ctx context.Context) ([]TierEntry, error)
}

// Builder fetches and joins the catalog inputs. Tiers is optional; nil
// means every player stays untiered.
type Builder struct {
	players providers.PlayerProvider
	adp     ADPSource
	tiers   TierSource
	redraft bool
	logger  *slog.Logger
}

// NewBuilder constructs a catalog builder.
func NewBuilder(playerProvider providers.PlayerProvider, adpSource ADPSource, tierSource TierSource, redraft bool, logger *slog.Logger) *Builder {
	return &Builder{
		players: playerProvider,
		adp:     adpSource,
		tiers:   tierSource,
		redraft: redraft,
		logger:  logger,
	}
}

// Build produces the ranked catalog: players sorted by ADP ascending with
// sentinel values for unranked players, then tiers applied. The result is
// safe to hold for the whole draft; the catalog refreshes at most daily
// upstream.
func (b *Builder) Build(ctx context.Context) ([]players.Player, error) {
	catalog, err := b.players.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	entries, err := b.adp.Table(ctx, b.redraft)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	catalog = reconcile.ApplyADP(catalog, entries)

	if b.tiers != nil {
		tierEntries, err := b.tiers.Tiers(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading tiers: %w", err)
		}
		b.applyTiers(catalog, tierEntries)
	}

	logging.Info(b.logger, "built player catalog", slog.Int(logging.FieldCount, len(catalog)))
	return catalog, nil
}

// applyTiers joins tier assignments onto the catalog in place by
// normalized name. Names are not unique, so the first catalog player to
// claim a tier row wins and later claimants are logged and left untiered.
func (b *Builder) applyTiers(catalog []players.Player, entries []TierEntry) {
	byName := make(map[string]TierEntry, len(entries))
	for _, entry := range entries {
		if _, seen := byName[entry.NormalizedName]; seen {
			logging.Warn(b.logger, "duplicate tier entry ignored", slog.String("normalized_name", entry.NormalizedName))
			continue
		}
		byName[entry.NormalizedName] = entry
	}

	claimed := make(map[string]string, len(byName))
	for i := range catalog {
		entry, ok := byName[catalog[i].NormalizedName]
		if !ok {
			continue
		}
		if owner, taken := claimed[catalog[i].NormalizedName]; taken {
			logging.Warn(b.logger, "tier name collision, first match kept",
				slog.String("normalized_name", catalog[i].NormalizedName),
				slog.String(logging.FieldPlayerID, catalog[i].PlayerID),
				slog.String("kept_player_id", owner))
			continue
		}
		claimed[catalog[i].NormalizedName] = catalog[i].PlayerID
		catalog[i].Tier = entry.Tier
		catalog[i].TierRank = entry.Rank
	}
}
