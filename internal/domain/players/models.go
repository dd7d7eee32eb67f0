package players

// Position is the fantasy-relevant position of a player.
type Position string

const (
	PositionQB      Position = "QB"
	PositionWR      Position = "WR"
	PositionRB      Position = "RB"
	PositionTE      Position = "TE"
	PositionK       Position = "K"
	PositionDEF     Position = "DEF"
	PositionUnknown Position = "UNKNOWN"
)

// PositionOrder is the fixed display and tally order for roster views.
// Every position count is reported in this order, including zero counts.
var PositionOrder = []Position{
	PositionQB,
	PositionWR,
	PositionRB,
	PositionTE,
	PositionK,
	PositionDEF,
}

// ParsePosition maps an upstream position label to a Position. Unlisted
// labels map to PositionUnknown rather than failing.
func ParsePosition(raw string) Position {
	switch raw {
	case "QB", "WR", "RB", "TE", "K", "DEF":
		return Position(raw)
	default:
		return PositionUnknown
	}
}

// SortRank returns the categorical rank of a position within PositionOrder.
// Unknown positions rank after every listed position so sorts push them last.
func (p Position) SortRank() int {
	for i, pos := range PositionOrder {
		if p == pos {
			return i
		}
	}
	return len(PositionOrder)
}

// Player is one row of the league-eligible player catalog.
//
// ADP is always populated: players absent from the ADP source carry a
// sentinel value strictly greater than every provider-sourced ADP, so
// downstream sorts never handle a null. Tier is 0 for untiered players;
// TierRank breaks ties within a tier. NormalizedName is a join key only,
// never a business identity, and is not guaranteed unique.
type Player struct {
	PlayerID       string   `json:"playerId"`
	FullName       string   `json:"fullName"`
	Position       Position `json:"position"`
	Team           string   `json:"team"`
	ADP            float64  `json:"adp"`
	Tier           int      `json:"tier,omitempty"`
	TierRank       int      `json:"tierRank,omitempty"`
	NormalizedName string   `json:"-"`
	InjuryStatus   string   `json:"injuryStatus,omitempty"`
	Age            int      `json:"age,omitempty"`
}

// Tiered reports whether the player has been assigned a tier.
func (p Player) Tiered() bool {
	return p.Tier > 0
}
