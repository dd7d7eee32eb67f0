// Package reconcile joins the cumulative pick list against the player
// catalog and derives the remaining-player pool. Every operation treats
// its inputs as immutable and returns fresh slices, so each poll cycle is
// a pure recomputation rather than an incremental mutation.
package reconcile

import (
	"sort"
	"strings"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/providers"
	"draft-companion/internal/users"
)

// MergePicksWithPlayers enriches picks with catalog metadata and resolved
// usernames. Ids are compared as trimmed strings on both sides; a pick
// whose player is missing from the catalog keeps a nil Player rather than
// failing the merge. Output is sorted by round then pick number, so
// re-merging the same inputs is a no-op.
func MergePicksWithPlayers(pickList []picks.Pick, catalog []players.Player, registry *users.Registry) []picks.EnrichedPick {
	byID := make(map[string]*players.Player, len(catalog))
	for i := range catalog {
		byID[cleanID(catalog[i].PlayerID)] = &catalog[i]
	}

	enriched := make([]picks.EnrichedPick, 0, len(pickList))
	for _, p := range pickList {
		username := picks.BotUsername
		if registry != nil {
			username = registry.Username(p.PickedBy)
		}
		enriched = append(enriched, picks.EnrichedPick{
			Pick:     p,
			Username: username,
			Player:   byID[cleanID(p.PlayerID)],
		})
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		if enriched[i].Round != enriched[j].Round {
			return enriched[i].Round < enriched[j].Round
		}
		return enriched[i].PickNo < enriched[j].PickNo
	})
	return enriched
}

// RemainingPlayers subtracts drafted ids from the catalog. It accepts the
// enriched pick list so callers can feed the merge output straight back
// in; when no picks have been made the full catalog is returned. Catalog
// order is preserved.
func RemainingPlayers(catalog []players.Player, drafted []picks.EnrichedPick) []players.Player {
	if len(drafted) == 0 {
		out := make([]players.Player, len(catalog))
		copy(out, catalog)
		return out
	}

	draftedIDs := make(map[string]struct{}, len(drafted))
	for _, p := range drafted {
		draftedIDs[cleanID(p.PlayerID)] = struct{}{}
	}

	remaining := make([]players.Player, 0, len(catalog))
	for _, player := range catalog {
		if _, taken := draftedIDs[cleanID(player.PlayerID)]; taken {
			continue
		}
		remaining = append(remaining, player)
	}
	return remaining
}

// ApplyADP joins ADP values onto the catalog by normalized name and sorts
// ascending. Catalog players absent from the ADP table get a sentinel of
// the maximum observed ADP plus one, so they sort after every ranked
// player instead of carrying a null. First match wins when two ADP rows
// normalize to the same name.
func ApplyADP(catalog []players.Player, entries []providers.ADPEntry) []players.Player {
	adpByName := make(map[string]float64, len(entries))
	maxADP := 0.0
	for _, entry := range entries {
		if _, seen := adpByName[entry.NormalizedName]; !seen {
			adpByName[entry.NormalizedName] = entry.ADP
		}
		if entry.ADP > maxADP {
			maxADP = entry.ADP
		}
	}
	sentinel := maxADP + 1

	out := make([]players.Player, len(catalog))
	copy(out, catalog)
	for i := range out {
		if adp, ok := adpByName[out[i].NormalizedName]; ok {
			out[i].ADP = adp
		} else {
			out[i].ADP = sentinel
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ADP < out[j].ADP })
	return out
}

func cleanID(id string) string {
	return strings.TrimSpace(id)
}
