package httpapi

import "net/http"

// NewRouter mounts the draft API routes.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/readyz", h.Ready)
	mux.HandleFunc("/draft", h.Draft)
	mux.HandleFunc("/draft/picks", h.Picks)
	mux.HandleFunc("/players/remaining", h.Remaining)
	mux.HandleFunc("/players/top/adp", h.TopByADP)
	mux.HandleFunc("/players/top/tier", h.TopByTier)
	mux.HandleFunc("/players/scarcity", h.Scarcity)
	mux.HandleFunc("/rosters", h.Rosters)
	mux.HandleFunc("/rosters/", h.Rosters)
	return mux
}
