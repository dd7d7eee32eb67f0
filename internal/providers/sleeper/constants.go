package sleeper

import "time"

const providerName = "sleeper"

const (
	defaultBaseURL           = "https://api.sleeper.app/v1"
	defaultHTTPTimeout       = 15 * time.Second
	defaultRequestsPerMinute = 60
	defaultSport             = "nfl"

	// The players endpoint returns several MB; everything else is small.
	maxErrorBodyBytes = 512
)
