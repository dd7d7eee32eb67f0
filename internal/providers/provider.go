package providers

import (
	"context"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
)

// DraftProvider fetches the live draft resource and its cumulative pick
// list. The pick list is a full replace on every call; the upstream has no
// incremental pick API.
type DraftProvider interface {
	FetchDraft(ctx context.Context, draftID string) (picks.DraftInfo, error)
	FetchDraftPicks(ctx context.Context, draftID string) ([]picks.Pick, error)
}

// PlayerProvider fetches the full league-eligible player catalog, already
// cleaned and normalized. The upstream cache refreshes at most daily, so
// callers should fetch once per run.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// ADPFormat selects which average-draft-position table to fetch.
type ADPFormat string

const (
	ADPStandard ADPFormat = "standard"
	ADPPPR      ADPFormat = "ppr"
	ADPRookie   ADPFormat = "rookie"
)

// ADPEntry is one row of a provider ADP table. ProviderID is local to the
// ADP source and never comparable to catalog player ids; NormalizedName is
// the only cross-source join key.
type ADPEntry struct {
	ProviderID     int
	Name           string
	NormalizedName string
	Position       players.Position
	Team           string
	ADP            float64
}

// ADPProvider fetches average-draft-position tables by scoring format.
type ADPProvider interface {
	FetchADP(ctx context.Context, format ADPFormat) ([]ADPEntry, error)
}

// LeagueUser is one member of a league, used to seed the user registry.
type LeagueUser struct {
	UserID      string
	Username    string
	DisplayName string
}

// LeagueInfo is the subset of the league resource this service consumes.
type LeagueInfo struct {
	LeagueID string
	Name     string
	DraftID  string
	Status   string
	Season   string
}

// LeagueProvider resolves leagues and their members at startup.
type LeagueProvider interface {
	FetchUserID(ctx context.Context, username string) (string, error)
	FetchUserLeagues(ctx context.Context, userID string) ([]LeagueInfo, error)
	FetchLeague(ctx context.Context, leagueID string) (LeagueInfo, error)
	FetchLeagueUsers(ctx context.Context, leagueID string) ([]LeagueUser, error)
}

// DataProvider combines the capabilities the wiring needs from a single
// upstream platform.
type DataProvider interface {
	DraftProvider
	PlayerProvider
	LeagueProvider
}
