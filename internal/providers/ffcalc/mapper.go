package ffcalc

import (
	"draft-companion/internal/domain/players"
	"draft-companion/internal/names"
	"draft-companion/internal/providers"
)

// mapEntries converts raw rows into provider entries. Rows without a name
// cannot join the catalog and are dropped. Defense rows get the same
// synthetic "{team} Defense" name the catalog uses so normalized names
// line up across sources.
func mapEntries(raw []adpPlayerResponse) []providers.ADPEntry {
	out := make([]providers.ADPEntry, 0, len(raw))
	for _, p := range raw {
		name := p.Name
		if name == "" {
			continue
		}
		position := players.ParsePosition(p.Position)
		if position == players.PositionDEF {
			name = names.DefenseName(p.Team)
		}
		out = append(out, providers.ADPEntry{
			ProviderID:     p.PlayerID,
			Name:           name,
			NormalizedName: names.Normalize(name),
			Position:       position,
			Team:           p.Team,
			ADP:            p.ADP,
		})
	}
	return out
}
