package rosters

import (
	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
)

// PositionCount is the tally for one position. Counts are always reported
// for the full fixed position order, zero counts included.
type PositionCount struct {
	Position players.Position `json:"position"`
	Count    int              `json:"count"`
}

// Roster is the set of players one user owns as of the latest
// reconciliation. It is rebuilt wholesale on every pass, never patched.
type Roster struct {
	Username string               `json:"username"`
	Picks    []picks.EnrichedPick `json:"picks"`
	Counts   []PositionCount      `json:"counts"`
}

// Size returns the number of picks on the roster.
func (r Roster) Size() int {
	return len(r.Picks)
}
