// Package fixture provides a deterministic in-memory draft useful for
// local development and bootstrapping without hitting real APIs. The
// scripted draft advances one pick per poll until the board is exhausted,
// then reports complete.
package fixture

import (
	"context"
	"sync"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/names"
	"draft-companion/internal/providers"
)

const (
	// DraftID is the id the scripted draft answers to.
	DraftID  = "fixture-draft"
	leagueID = "fixture-league"
)

// Provider serves a fixed league and a draft that advances on every pick
// poll. Safe for concurrent use.
type Provider struct {
	mu       sync.Mutex
	revealed int
	script   []picks.Pick
	catalog  []players.Player
}

// New creates a fixture provider.
func New() *Provider {
	catalog := fixtureCatalog()
	script := make([]picks.Pick, 0, len(catalog))
	for i, p := range catalog {
		pickedBy := "fixture-user-1"
		if i%2 == 1 {
			pickedBy = "fixture-user-2"
		}
		script = append(script, picks.Pick{
			PickNo:    i + 1,
			Round:     i/2 + 1,
			DraftSlot: i%2 + 1,
			PlayerID:  p.PlayerID,
			PickedBy:  pickedBy,
		})
	}
	return &Provider{script: script, catalog: catalog}
}

// FetchDraft reports drafting until the script is exhausted, then complete.
func (p *Provider) FetchDraft(ctx context.Context, draftID string) (picks.DraftInfo, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()

	status := picks.StatusDrafting
	if p.revealed >= len(p.script) {
		status = picks.StatusComplete
	}
	return picks.DraftInfo{
		DraftID:  draftID,
		Type:     "snake",
		Status:   status,
		Settings: map[string]int{"teams": 2, "rounds": len(p.script) / 2},
	}, nil
}

// FetchDraftPicks reveals one more scripted pick per call.
func (p *Provider) FetchDraftPicks(ctx context.Context, draftID string) ([]picks.Pick, error) {
	_ = ctx
	_ = draftID
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.revealed < len(p.script) {
		p.revealed++
	}
	out := make([]picks.Pick, p.revealed)
	copy(out, p.script[:p.revealed])
	return out, nil
}

// FetchPlayers returns the fixture catalog.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(p.catalog))
	copy(out, p.catalog)
	return out, nil
}

// FetchADP ranks the fixture catalog in order, regardless of format.
func (p *Provider) FetchADP(ctx context.Context, format providers.ADPFormat) ([]providers.ADPEntry, error) {
	_ = ctx
	_ = format
	out := make([]providers.ADPEntry, 0, len(p.catalog))
	for i, player := range p.catalog {
		out = append(out, providers.ADPEntry{
			ProviderID:     i + 1,
			Name:           player.FullName,
			NormalizedName: player.NormalizedName,
			Position:       player.Position,
			Team:           player.Team,
			ADP:            float64(i + 1),
		})
	}
	return out, nil
}

// FetchUserID resolves any username to a fixture id.
func (p *Provider) FetchUserID(ctx context.Context, username string) (string, error) {
	_ = ctx
	return "fixture-user-" + username, nil
}

// FetchUserLeagues returns the single fixture league.
func (p *Provider) FetchUserLeagues(ctx context.Context, userID string) ([]providers.LeagueInfo, error) {
	_ = userID
	league, err := p.FetchLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return []providers.LeagueInfo{league}, nil
}

// FetchLeague returns the fixture league.
func (p *Provider) FetchLeague(ctx context.Context, leagueID string) (providers.LeagueInfo, error) {
	_ = ctx
	return providers.LeagueInfo{
		LeagueID: leagueID,
		Name:     "Fixture League",
		DraftID:  DraftID,
		Status:   "drafting",
		Season:   "2025",
	}, nil
}

// FetchLeagueUsers returns the two fixture members.
func (p *Provider) FetchLeagueUsers(ctx context.Context, leagueID string) ([]providers.LeagueUser, error) {
	_ = ctx
	_ = leagueID
	return []providers.LeagueUser{
		{UserID: "fixture-user-1", Username: "alpha", DisplayName: "Alpha"},
		{UserID: "fixture-user-2", Username: "bravo", DisplayName: "Bravo"},
	}, nil
}

func fixtureCatalog() []players.Player {
	entries := []struct {
		id, name, team string
		position       players.Position
	}{
		{"f-1", "Quentin Passer", "ATL", players.PositionQB},
		{"f-2", "Wade Receiver", "BUF", players.PositionWR},
		{"f-3", "Randy Back", "CHI", players.PositionRB},
		{"f-4", "Trey End Jr.", "DAL", players.PositionTE},
		{"f-5", "Wes Receiver II", "GB", players.PositionWR},
		{"f-6", "Kent Kicker", "KC", players.PositionK},
		{"DEN", "", "DEN", players.PositionDEF},
		{"f-8", "Ray Back", "LAR", players.PositionRB},
	}

	out := make([]players.Player, 0, len(entries))
	for _, e := range entries {
		fullName := e.name
		if e.position == players.PositionDEF {
			fullName = names.DefenseName(e.team)
		}
		out = append(out, players.Player{
			PlayerID:       e.id,
			FullName:       fullName,
			Position:       e.position,
			Team:           e.team,
			NormalizedName: names.Normalize(fullName),
		})
	}
	return out
}
