package sleeper

import (
	"sort"
	"time"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/names"
	"draft-companion/internal/providers"
	"draft-companion/internal/timeutil"
)

// Placeholder catalog entries the upstream never cleans up.
var duplicateNames = map[string]struct{}{
	"Duplicate Player":             {},
	"TreVeyon Henderson DUPLICATE": {},
}

func mapLeague(l leagueResponse) providers.LeagueInfo {
	return providers.LeagueInfo{
		LeagueID: l.LeagueID,
		Name:     l.Name,
		DraftID:  l.DraftID,
		Status:   l.Status,
		Season:   l.Season,
	}
}

func mapDraft(d draftResponse) picks.DraftInfo {
	var startTime *time.Time
	if d.StartTime != nil && *d.StartTime > 0 {
		t := timeutil.FromEpochMillis(*d.StartTime)
		startTime = &t
	}

	return picks.DraftInfo{
		DraftID:   d.DraftID,
		Type:      d.Type,
		Status:    picks.ParseStatus(d.Status),
		StartTime: startTime,
		Settings:  d.Settings,
		Order:     d.DraftOrder,
	}
}

func mapPick(p pickResponse) picks.Pick {
	return picks.Pick{
		PickNo:    p.PickNo,
		Round:     p.Round,
		DraftSlot: p.DraftSlot,
		PlayerID:  p.PlayerID,
		PickedBy:  p.PickedBy,
		IsKeeper:  p.IsKeeper,
	}
}

// mapPlayers cleans the raw catalog map into league-eligible players:
// inactive players, placeholder duplicates, and players without a fantasy
// position are dropped. Team defenses get a synthetic "{team} Defense"
// full name since the upstream leaves theirs empty. Output is ordered by
// player id so repeated fetches compare equal.
func mapPlayers(raw map[string]playerResponse) []players.Player {
	out := make([]players.Player, 0, len(raw))
	for id, p := range raw {
		if p.PlayerID == "" {
			p.PlayerID = id
		}
		if !p.Active {
			continue
		}
		if _, dup := duplicateNames[p.FullName]; dup {
			continue
		}
		position := resolvePosition(p)
		if position == players.PositionUnknown {
			continue
		}

		fullName := p.FullName
		if position == players.PositionDEF {
			fullName = names.DefenseName(p.Team)
		}

		out = append(out, players.Player{
			PlayerID:       p.PlayerID,
			FullName:       fullName,
			Position:       position,
			Team:           p.Team,
			NormalizedName: names.Normalize(fullName),
			InjuryStatus:   p.InjuryStatus,
			Age:            p.Age,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// resolvePosition prefers the primary position and falls back to the first
// recognized fantasy position. Players with neither are not draftable in
// standard formats.
func resolvePosition(p playerResponse) players.Position {
	if pos := players.ParsePosition(p.Position); pos != players.PositionUnknown {
		return pos
	}
	for _, raw := range p.FantasyPositions {
		if pos := players.ParsePosition(raw); pos != players.PositionUnknown {
			return pos
		}
	}
	return players.PositionUnknown
}
