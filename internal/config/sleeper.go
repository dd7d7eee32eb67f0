package config

import "time"

// SleeperConfig controls how the Sleeper client reaches the upstream API.
type SleeperConfig struct {
	BaseURL           string
	Timeout           Duration
	RequestsPerMinute int
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL:           envOrDefault("SLEEPER_BASE_URL", ""),
		Timeout:           durationEnvOrDefault("SLEEPER_TIMEOUT", 15*time.Second),
		RequestsPerMinute: intEnvOrDefault("SLEEPER_RPM", 60),
	}
}
