package providers

import "errors"

// ErrProviderUnavailable indicates a provider was not configured or has
// been shut down.
var ErrProviderUnavailable = errors.New("provider unavailable")
