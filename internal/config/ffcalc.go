package config

import "time"

// FFCalcConfig controls the FantasyFootballCalculator ADP client and the
// blend weights applied to its standard/PPR tables. Weights must sum to 1;
// the blender validates this at the point of use.
type FFCalcConfig struct {
	BaseURL        string
	Timeout        Duration
	Teams          int
	StandardWeight float64
	PPRWeight      float64
}

func loadFFCalc() FFCalcConfig {
	return FFCalcConfig{
		BaseURL:        envOrDefault("FFCALC_BASE_URL", ""),
		Timeout:        durationEnvOrDefault("FFCALC_TIMEOUT", 15*time.Second),
		Teams:          intEnvOrDefault("FFCALC_TEAMS", 12),
		StandardWeight: floatEnvOrDefault("FFCALC_STANDARD_WEIGHT", 0.4),
		PPRWeight:      floatEnvOrDefault("FFCALC_PPR_WEIGHT", 0.6),
	}
}
