package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envRedraft      = "REDRAFT"
	envUsername     = "SLEEPER_USERNAME"
	envLeagueName   = "SLEEPER_LEAGUE_NAME"
	envLeagueID     = "SLEEPER_LEAGUE_ID"
	envDraftID      = "SLEEPER_DRAFT_ID"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envStorePath    = "BOARD_DB_PATH"

	defaultPort = "4000"
	// Sleeper asks integrations to stay under 1000 calls/minute; a draft
	// only needs a few polls per pick window.
	defaultPollInterval = 5 * Duration(time.Second)
	defaultProvider     = "sleeper"
	defaultMetricsPort  = "9090"
	defaultStorePath    = "draftboard.db"
	defaultServiceName  = "draft-companion"
)
