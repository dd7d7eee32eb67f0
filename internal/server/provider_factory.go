package server

import (
	"log/slog"
	"time"

	"draft-companion/internal/config"
	"draft-companion/internal/metrics"
	"draft-companion/internal/providers"
	"draft-companion/internal/providers/ffcalc"
	"draft-companion/internal/providers/fixture"
	"draft-companion/internal/providers/sleeper"
)

// providerFactory assembles the platform and ADP providers with shared
// retry wrappers. The draft tracker polls the platform provider raw; only
// the one-shot catalog and ADP fetches are retried.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the platform provider, the retried player catalog
// provider, and the retried ADP provider.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, providers.PlayerProvider, providers.ADPProvider) {
	if cfg.Provider == "fixture" {
		fix := fixture.New()
		return fix,
			providers.NewRetryingPlayerProvider(fix, "fixture", f.logger, f.metrics, 0, 0),
			providers.NewRetryingADPProvider(fix, "fixture", f.logger, f.metrics, 0, 0)
	}

	platform := sleeper.NewClient(sleeper.Config{
		BaseURL:           cfg.Sleeper.BaseURL,
		Timeout:           time.Duration(cfg.Sleeper.Timeout),
		RequestsPerMinute: cfg.Sleeper.RequestsPerMinute,
		Logger:            f.logger,
		Recorder:          f.metrics,
	})
	adpClient := ffcalc.NewClient(ffcalc.Config{
		BaseURL:  cfg.FFCalc.BaseURL,
		Timeout:  time.Duration(cfg.FFCalc.Timeout),
		Teams:    cfg.FFCalc.Teams,
		Logger:   f.logger,
		Recorder: f.metrics,
	})

	return platform,
		providers.NewRetryingPlayerProvider(platform, "sleeper", f.logger, f.metrics, 0, 0),
		providers.NewRetryingADPProvider(adpClient, "ffcalc", f.logger, f.metrics, 0, 0)
}
