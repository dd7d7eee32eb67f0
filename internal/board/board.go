// Package board holds the reconciled draft snapshot and the read-side
// queries served over HTTP: top available players by ADP or tier, position
// scarcity, and per-user rosters.
package board

import (
	"sort"
	"time"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/domain/rosters"
)

const (
	DefaultTopN       = 10
	DefaultTierMax    = 3
	DefaultTierCutoff = 6
)

// Snapshot is one complete reconciled view of the draft. Snapshots are
// immutable once published; every poll cycle builds a fresh one.
type Snapshot struct {
	Draft     picks.DraftInfo      `json:"draft"`
	Picks     []picks.EnrichedPick `json:"picks"`
	Remaining []players.Player     `json:"remaining"`
	Rosters   []rosters.Roster     `json:"rosters"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// TopByADP returns the n best remaining players by ADP, optionally
// filtered to a set of positions. Rows carrying the maximum ADP within the
// filtered set are excluded; that value is the sentinel for players the
// ADP source never ranked.
func (s *Snapshot) TopByADP(positions []players.Position, n int) []players.Player {
	if n <= 0 {
		n = DefaultTopN
	}

	filtered := filterPositions(s.Remaining, positions)
	maxADP := 0.0
	for _, p := range filtered {
		if p.ADP > maxADP {
			maxADP = p.ADP
		}
	}

	out := make([]players.Player, 0, n)
	for _, p := range filtered {
		if p.ADP == maxADP {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ADP < out[j].ADP })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopByTier returns the n best remaining tiered players at or better than
// tierMax, sorted by tier then intra-tier rank. Untiered players never
// qualify.
func (s *Snapshot) TopByTier(positions []players.Position, tierMax, n int) []players.Player {
	if tierMax <= 0 {
		tierMax = DefaultTierMax
	}
	if n <= 0 {
		n = DefaultTopN
	}

	out := make([]players.Player, 0, n)
	for _, p := range filterPositions(s.Remaining, positions) {
		if !p.Tiered() || p.Tier > tierMax {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].TierRank < out[j].TierRank
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Scarcity counts the remaining tiered players at the given positions at
// or better than tierCutoff.
func (s *Snapshot) Scarcity(positions []players.Position, tierCutoff int) int {
	if tierCutoff <= 0 {
		tierCutoff = DefaultTierCutoff
	}

	count := 0
	for _, p := range filterPositions(s.Remaining, positions) {
		if p.Tiered() && p.Tier <= tierCutoff {
			count++
		}
	}
	return count
}

// RecentPickCounts tallies positions over the most recent n picks, in the
// fixed position order.
func (s *Snapshot) RecentPickCounts(n int) []rosters.PositionCount {
	if n <= 0 {
		n = DefaultTopN
	}
	recent := s.Picks
	if len(recent) > n {
		recent = recent[len(recent)-n:]
	}

	tally := make(map[players.Position]int, len(players.PositionOrder))
	for _, p := range recent {
		if p.Player != nil {
			tally[p.Player.Position]++
		}
	}
	counts := make([]rosters.PositionCount, 0, len(players.PositionOrder))
	for _, pos := range players.PositionOrder {
		counts = append(counts, rosters.PositionCount{Position: pos, Count: tally[pos]})
	}
	return counts
}

// Roster returns the roster for a username when present.
func (s *Snapshot) Roster(username string) (rosters.Roster, bool) {
	for _, r := range s.Rosters {
		if r.Username == username {
			return r, true
		}
	}
	return rosters.Roster{}, false
}

func filterPositions(pool []players.Player, positions []players.Position) []players.Player {
	if len(positions) == 0 {
		return pool
	}
	wanted := make(map[players.Position]struct{}, len(positions))
	for _, pos := range positions {
		wanted[pos] = struct{}{}
	}

	out := make([]players.Player, 0, len(pool))
	for _, p := range pool {
		if _, ok := wanted[p.Position]; ok {
			out = append(out, p)
		}
	}
	return out
}
