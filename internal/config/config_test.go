package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if !cfg.Redraft {
		t.Fatalf("expected redraft mode by default")
	}
	if cfg.FFCalc.StandardWeight != 0.4 || cfg.FFCalc.PPRWeight != 0.6 {
		t.Fatalf("expected default blend weights 0.4/0.6, got %v/%v", cfg.FFCalc.StandardWeight, cfg.FFCalc.PPRWeight)
	}
	if cfg.Store.Path != defaultStorePath {
		t.Fatalf("expected default store path %s, got %s", defaultStorePath, cfg.Store.Path)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envDraftID, "1254970326761082880")
	t.Setenv(envRedraft, "false")
	t.Setenv("FFCALC_STANDARD_WEIGHT", "0.5")
	t.Setenv("FFCALC_PPR_WEIGHT", "0.5")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.DraftID != "1254970326761082880" {
		t.Fatalf("expected draft id override, got %s", cfg.DraftID)
	}
	if cfg.Redraft {
		t.Fatalf("expected redraft disabled")
	}
	if cfg.FFCalc.StandardWeight != 0.5 || cfg.FFCalc.PPRWeight != 0.5 {
		t.Fatalf("expected weight overrides, got %v/%v", cfg.FFCalc.StandardWeight, cfg.FFCalc.PPRWeight)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}
