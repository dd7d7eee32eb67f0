// Package roster groups enriched picks into per-user rosters with
// position tallies.
package roster

import (
	"sort"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/domain/rosters"
)

// Build assembles one user's roster from the enriched pick list. Picks are
// ordered by the fixed position order so the roster reads QB first, DEF
// last; ties keep draft order. Counts always cover every listed position,
// zero counts included.
func Build(username string, enriched []picks.EnrichedPick) rosters.Roster {
	owned := make([]picks.EnrichedPick, 0, len(enriched))
	for _, p := range enriched {
		if p.Username == username {
			owned = append(owned, p)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return positionRank(owned[i]) < positionRank(owned[j])
	})

	tally := make(map[players.Position]int, len(players.PositionOrder))
	for _, p := range owned {
		if p.Player != nil {
			tally[p.Player.Position]++
		}
	}
	counts := make([]rosters.PositionCount, 0, len(players.PositionOrder))
	for _, pos := range players.PositionOrder {
		counts = append(counts, rosters.PositionCount{Position: pos, Count: tally[pos]})
	}

	return rosters.Roster{Username: username, Picks: owned, Counts: counts}
}

// BuildAll assembles a roster for every username present in the pick
// list, ordered by username for stable output.
func BuildAll(enriched []picks.EnrichedPick) []rosters.Roster {
	seen := make(map[string]struct{})
	usernames := make([]string, 0)
	for _, p := range enriched {
		if _, ok := seen[p.Username]; ok {
			continue
		}
		seen[p.Username] = struct{}{}
		usernames = append(usernames, p.Username)
	}
	sort.Strings(usernames)

	out := make([]rosters.Roster, 0, len(usernames))
	for _, username := range usernames {
		out = append(out, Build(username, enriched))
	}
	return out
}

// positionRank ranks picks whose player never resolved after every real
// position so they collect at the bottom of the roster view.
func positionRank(p picks.EnrichedPick) int {
	if p.Player == nil {
		return len(players.PositionOrder) + 1
	}
	return p.Player.Position.SortRank()
}
