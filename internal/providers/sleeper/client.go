package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/logging"
	"draft-companion/internal/metrics"
	"draft-companion/internal/providers"
)

// Config controls how the Sleeper client reaches the upstream API.
type Config struct {
	BaseURL           string
	Season            string
	HTTPClient        *http.Client
	Timeout           time.Duration
	RequestsPerMinute int
	Logger            *slog.Logger
	Recorder          *metrics.Recorder
}

// Client talks to the Sleeper platform API and maps its resources to
// domain models. All requests pass through a shared client-side rate
// limiter; Sleeper throttles aggressive pollers.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer
	limiter    *rate.Limiter
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

var _ providers.DataProvider = (*Client)(nil)

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     resolveSeason(cfg.Season),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		limiter:    resolveLimiter(cfg.RequestsPerMinute),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

// FetchUserID resolves a username (or bare user id) to the canonical user id.
func (c *Client) FetchUserID(ctx context.Context, username string) (string, error) {
	var user userResponse
	if err := c.getJSON(ctx, "/user/"+username, &user); err != nil {
		return "", err
	}
	if user.UserID == "" {
		return "", fmt.Errorf("sleeper: no user found for %q", username)
	}
	return user.UserID, nil
}

// FetchUserLeagues lists the leagues a user belongs to for the configured
// season.
func (c *Client) FetchUserLeagues(ctx context.Context, userID string) ([]providers.LeagueInfo, error) {
	var leagues []leagueResponse
	path := fmt.Sprintf("/user/%s/leagues/%s/%s", userID, defaultSport, c.season)
	if err := c.getJSON(ctx, path, &leagues); err != nil {
		return nil, err
	}

	out := make([]providers.LeagueInfo, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, mapLeague(l))
	}
	return out, nil
}

// FetchLeague retrieves a single league resource.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (providers.LeagueInfo, error) {
	var league leagueResponse
	if err := c.getJSON(ctx, "/league/"+leagueID, &league); err != nil {
		return providers.LeagueInfo{}, err
	}
	return mapLeague(league), nil
}

// FetchLeagueUsers resolves league members through the roster list. Each
// roster names an owner id; the owner's profile is fetched to recover the
// username. Rosters without an owner (orphaned teams) are skipped.
func (c *Client) FetchLeagueUsers(ctx context.Context, leagueID string) ([]providers.LeagueUser, error) {
	var rosters []rosterResponse
	if err := c.getJSON(ctx, "/league/"+leagueID+"/rosters", &rosters); err != nil {
		return nil, err
	}

	out := make([]providers.LeagueUser, 0, len(rosters))
	for _, roster := range rosters {
		if roster.OwnerID == "" {
			logging.Warn(c.logger, "roster has no owner, skipping", slog.Int("roster_id", roster.RosterID))
			continue
		}
		var user userResponse
		if err := c.getJSON(ctx, "/user/"+roster.OwnerID, &user); err != nil {
			return nil, fmt.Errorf("resolving owner %s: %w", roster.OwnerID, err)
		}
		out = append(out, providers.LeagueUser{
			UserID:      user.UserID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
		})
	}
	return out, nil
}

// FetchDraft retrieves the draft resource, including its current status.
func (c *Client) FetchDraft(ctx context.Context, draftID string) (picks.DraftInfo, error) {
	var draft draftResponse
	if err := c.getJSON(ctx, "/draft/"+draftID, &draft); err != nil {
		return picks.DraftInfo{}, err
	}

	info := mapDraft(draft)
	if info.Status == picks.StatusUnknown {
		logging.Warn(c.logger, "unrecognized draft status",
			slog.String(logging.FieldDraftID, draftID),
			slog.String(logging.FieldStatus, draft.Status))
	}
	return info, nil
}

// FetchDraftPicks retrieves the cumulative pick list for a draft. The
// upstream returns the full list on every call.
func (c *Client) FetchDraftPicks(ctx context.Context, draftID string) ([]picks.Pick, error) {
	var raw []pickResponse
	if err := c.getJSON(ctx, "/draft/"+draftID+"/picks", &raw); err != nil {
		return nil, err
	}

	out := make([]picks.Pick, 0, len(raw))
	for _, p := range raw {
		out = append(out, mapPick(p))
	}
	return out, nil
}

// FetchPlayers retrieves and cleans the full NFL player catalog. The
// upstream response is a large map refreshed at most daily; callers should
// fetch once per run.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var raw map[string]playerResponse
	if err := c.getJSON(ctx, "/players/"+defaultSport, &raw); err != nil {
		return nil, err
	}

	catalog := mapPlayers(raw)
	logging.Info(c.logger, "fetched player catalog",
		slog.String(logging.FieldProvider, providerName),
		slog.Int(logging.FieldCount, len(catalog)),
		slog.Int("raw_count", len(raw)))
	return catalog, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		if waited := time.Since(waitStart); waited > 0 {
			c.recorder.RecordRateLimitWait(providerName, waited)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("sleeper: unexpected status %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
