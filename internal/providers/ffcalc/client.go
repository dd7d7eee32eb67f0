// Package ffcalc fetches average-draft-position tables from the
// FantasyFootballCalculator public API.
package ffcalc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"draft-companion/internal/logging"
	"draft-companion/internal/metrics"
	"draft-companion/internal/providers"
)

const providerName = "ffcalc"

const (
	defaultBaseURL     = "https://fantasyfootballcalculator.com/api/v1/adp"
	defaultHTTPTimeout = 15 * time.Second
	defaultTeams       = 12
	maxErrorBodyBytes  = 512
)

// Config controls how the client reaches the upstream API. Teams scopes
// the ADP table to a league size; the upstream default differs from the
// common 12-team format.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Teams      int
	Logger     *slog.Logger
	Recorder   *metrics.Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches ADP tables and maps them to provider entries.
type Client struct {
	baseURL    string
	teams      int
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

var _ providers.ADPProvider = (*Client)(nil)

// NewClient constructs an ffcalc client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	teams := cfg.Teams
	if teams <= 0 {
		teams = defaultTeams
	}
	httpClient := httpDoer(cfg.HTTPClient)
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		teams:      teams,
		httpClient: httpClient,
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

// FetchADP retrieves the ADP table for a scoring format.
func (c *Client) FetchADP(ctx context.Context, format providers.ADPFormat) ([]providers.ADPEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+string(format), nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("teams", strconv.Itoa(c.teams))
	req.URL.RawQuery = q.Encode()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.recorder.RecordProviderAttempt(providerName, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("ffcalc: unexpected status %d for %s: %s", resp.StatusCode, format, strings.TrimSpace(string(body)))
	}

	var payload adpResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	entries := mapEntries(payload.Players)
	logging.Info(c.logger, "fetched adp table",
		slog.String(logging.FieldProvider, providerName),
		slog.String("format", string(format)),
		slog.Int(logging.FieldCount, len(entries)))
	return entries, nil
}
