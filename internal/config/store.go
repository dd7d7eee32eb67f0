package config

// StoreConfig controls the tabular draftboard sink.
type StoreConfig struct {
	Path    string
	Enabled bool
}

func loadStore() StoreConfig {
	return StoreConfig{
		Path:    envOrDefault(envStorePath, defaultStorePath),
		Enabled: boolEnvOrDefault("BOARD_DB_ENABLED", true),
	}
}
