package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Redraft      bool

	// Draft resolution: DraftID wins when set; otherwise the league is
	// resolved from Username + LeagueName (or LeagueID) at startup.
	Username   string
	LeagueName string
	LeagueID   string
	DraftID    string

	Sleeper SleeperConfig
	FFCalc  FFCalcConfig
	Store   StoreConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Redraft:      boolEnvOrDefault(envRedraft, true),
		Username:     envOrDefault(envUsername, ""),
		LeagueName:   envOrDefault(envLeagueName, ""),
		LeagueID:     envOrDefault(envLeagueID, ""),
		DraftID:      envOrDefault(envDraftID, ""),
		Sleeper:      loadSleeper(),
		FFCalc:       loadFFCalc(),
		Store:        loadStore(),
		Metrics:      loadMetrics(),
	}
}
