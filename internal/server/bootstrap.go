package server

import (
	"context"
	"fmt"
	"log/slog"

	"draft-companion/internal/adp"
	"draft-companion/internal/boardstore"
	"draft-companion/internal/catalog"
	"draft-companion/internal/config"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/logging"
	"draft-companion/internal/providers"
	"draft-companion/internal/users"
)

// bootstrapResult carries everything resolved once at startup: the draft
// to track, the league membership, the ranked catalog, and the optional
// persistence sink.
type bootstrapResult struct {
	draftID  string
	league   providers.LeagueInfo
	registry *users.Registry
	catalog  []players.Player
	sink     *boardstore.Store
}

// bootstrap resolves the draft and builds the catalog before polling
// starts. The catalog is fetched once; it refreshes at most daily upstream
// and never changes mid-draft.
func (s *Server) bootstrap(ctx context.Context) (*bootstrapResult, error) {
	league, err := resolveLeague(ctx, s.cfg, s.platform, s.logger)
	if err != nil {
		return nil, err
	}

	draftID := s.cfg.DraftID
	if draftID == "" {
		draftID = league.DraftID
	}
	if draftID == "" {
		return nil, fmt.Errorf("no draft id configured and league %q has none", league.Name)
	}

	registry := users.NewRegistry()
	if league.LeagueID != "" {
		members, err := s.platform.FetchLeagueUsers(ctx, league.LeagueID)
		if err != nil {
			return nil, fmt.Errorf("resolving league members: %w", err)
		}
		for _, m := range members {
			registry.Add(m.UserID, m.Username)
		}
	}
	logging.Info(s.logger, "resolved league",
		slog.String("league", league.Name),
		slog.String(logging.FieldDraftID, draftID),
		slog.Int("members", registry.Len()))

	var sink *boardstore.Store
	var tiers catalog.TierSource
	if s.cfg.Store.Enabled {
		sink, err = boardstore.Open(s.cfg.Store.Path, s.logger)
		if err != nil {
			return nil, fmt.Errorf("opening board store: %w", err)
		}
		tiers = sink
	}

	blender := adp.NewBlender(s.adpProvider, adp.Weights{
		Standard: s.cfg.FFCalc.StandardWeight,
		PPR:      s.cfg.FFCalc.PPRWeight,
	}, s.logger)
	builder := catalog.NewBuilder(s.playerProvider, blender, tiers, s.cfg.Redraft, s.logger)
	ranked, err := builder.Build(ctx)
	if err != nil {
		if sink != nil {
			sink.Close()
		}
		return nil, err
	}

	if sink != nil {
		info, err := s.platform.FetchDraft(ctx, draftID)
		if err != nil {
			logging.Warn(s.logger, "could not capture draft settings", "error", err)
		} else if err := sink.SaveLeagueSettings(ctx, league, info); err != nil {
			logging.Warn(s.logger, "could not persist league settings", "error", err)
		}
	}

	return &bootstrapResult{
		draftID:  draftID,
		league:   league,
		registry: registry,
		catalog:  ranked,
		sink:     sink,
	}, nil
}

// resolveLeague finds the league to track. An explicit league id wins;
// otherwise the configured username's leagues are searched by name.
func resolveLeague(ctx context.Context, cfg config.Config, platform providers.LeagueProvider, logger *slog.Logger) (providers.LeagueInfo, error) {
	if cfg.LeagueID != "" {
		return platform.FetchLeague(ctx, cfg.LeagueID)
	}
	if cfg.DraftID != "" && cfg.Username == "" {
		// Tracking a bare draft id; no league context available.
		return providers.LeagueInfo{DraftID: cfg.DraftID}, nil
	}
	if cfg.Username == "" {
		return providers.LeagueInfo{}, fmt.Errorf("either SLEEPER_LEAGUE_ID, SLEEPER_DRAFT_ID, or SLEEPER_USERNAME must be set")
	}

	userID, err := platform.FetchUserID(ctx, cfg.Username)
	if err != nil {
		return providers.LeagueInfo{}, fmt.Errorf("resolving user %q: %w", cfg.Username, err)
	}

	leagues, err := platform.FetchUserLeagues(ctx, userID)
	if err != nil {
		return providers.LeagueInfo{}, fmt.Errorf("listing leagues for %q: %w", cfg.Username, err)
	}

	if cfg.LeagueName == "" {
		if len(leagues) == 1 {
			return leagues[0], nil
		}
		return providers.LeagueInfo{}, fmt.Errorf("user %q is in %d leagues, set SLEEPER_LEAGUE_NAME", cfg.Username, len(leagues))
	}

	names := make([]string, 0, len(leagues))
	for _, league := range leagues {
		if league.Name == cfg.LeagueName {
			return league, nil
		}
		names = append(names, league.Name)
	}

	logging.Error(logger, "league not found", nil,
		slog.String("league_name", cfg.LeagueName),
		slog.Any("available", names))
	return providers.LeagueInfo{}, fmt.Errorf("no league called %q for user %q", cfg.LeagueName, cfg.Username)
}
