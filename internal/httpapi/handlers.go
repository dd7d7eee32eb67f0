// Package httpapi serves the reconciled draft state over HTTP.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"draft-companion/internal/board"
	"draft-companion/internal/domain/players"
	"draft-companion/internal/poller"
)

// SnapshotSource yields the latest published snapshot, nil before the
// first publish.
type SnapshotSource interface {
	Snapshot() *board.Snapshot
}

// Handler wires HTTP routes to the draft snapshot.
type Handler struct {
	source   SnapshotSource
	statusFn func() poller.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler. statusFn may be nil when no poller is
// running (readiness then depends only on a snapshot existing).
func NewHandler(source SnapshotSource, statusFn func() poller.Status, logger *slog.Logger) *Handler {
	return &Handler{source: source, statusFn: statusFn, logger: logger}
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the service can answer draft queries.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snapshot := h.source.Snapshot()
	ready := snapshot != nil
	payload := map[string]any{"ready": ready}

	if h.statusFn != nil {
		status := h.statusFn()
		ready = ready && (status.IsReady() || status.Completed)
		payload["ready"] = ready
		payload["draftStatus"] = status.DraftStatus
		payload["picksSeen"] = status.PicksSeen
		payload["consecutiveFailures"] = status.ConsecutiveFailures
		if status.LastError != "" {
			payload["lastError"] = status.LastError
		}
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, payload)
}

// Draft returns the draft info from the latest snapshot.
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot.Draft)
}

// Picks returns the enriched pick list.
func (h *Handler) Picks(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"updatedAt": snapshot.UpdatedAt,
		"picks":     snapshot.Picks,
	})
}

// Remaining returns the undrafted player pool, optionally filtered by
// position.
func (h *Handler) Remaining(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}

	positions, err := parsePositions(r.URL.Query().Get("position"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	remaining := snapshot.Remaining
	if len(positions) > 0 {
		filtered := make([]players.Player, 0, len(remaining))
		wanted := make(map[players.Position]struct{}, len(positions))
		for _, p := range positions {
			wanted[p] = struct{}{}
		}
		for _, p := range remaining {
			if _, ok := wanted[p.Position]; ok {
				filtered = append(filtered, p)
			}
		}
		remaining = filtered
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"updatedAt": snapshot.UpdatedAt,
		"count":     len(remaining),
		"players":   remaining,
	})
}

// TopByADP returns the best remaining players by ADP.
func (h *Handler) TopByADP(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}

	positions, err := parsePositions(r.URL.Query().Get("position"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := parseIntParam(r, "n", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"players": snapshot.TopByADP(positions, n),
	})
}

// TopByTier returns the best remaining tiered players.
func (h *Handler) TopByTier(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}

	positions, err := parsePositions(r.URL.Query().Get("position"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tierMax, err := parseIntParam(r, "tier_max", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := parseIntParam(r, "n", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"players": snapshot.TopByTier(positions, tierMax, n),
	})
}

// Scarcity counts remaining tiered players at the given positions.
func (h *Handler) Scarcity(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}

	positions, err := parsePositions(r.URL.Query().Get("position"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(positions) == 0 {
		h.writeError(w, http.StatusBadRequest, "position parameter required")
		return
	}
	tierCutoff, err := parseIntParam(r, "tier_cutoff", 0)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"positions": positions,
		"count":     snapshot.Scarcity(positions, tierCutoff),
	})
}

// Rosters returns every roster, or one when the path names a username.
// Expect path: /rosters or /rosters/{username}.
func (h *Handler) Rosters(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.snapshot(w)
	if !ok {
		return
	}

	username := strings.TrimPrefix(r.URL.Path, "/rosters")
	username = strings.TrimPrefix(username, "/")
	if username == "" {
		h.writeJSON(w, http.StatusOK, map[string]any{"rosters": snapshot.Rosters})
		return
	}

	roster, found := snapshot.Roster(username)
	if !found {
		h.writeError(w, http.StatusNotFound, "roster not found")
		return
	}
	h.writeJSON(w, http.StatusOK, roster)
}

// snapshot fetches the latest snapshot, answering 503 when nothing has
// been published yet.
func (h *Handler) snapshot(w http.ResponseWriter) (*board.Snapshot, bool) {
	snapshot := h.source.Snapshot()
	if snapshot == nil {
		h.writeError(w, http.StatusServiceUnavailable, "no draft snapshot yet")
		return nil, false
	}
	return snapshot, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func parsePositions(raw string) ([]players.Position, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]players.Position, 0, len(parts))
	for _, part := range parts {
		label := strings.ToUpper(strings.TrimSpace(part))
		if label == "" {
			continue
		}
		pos := players.ParsePosition(label)
		if pos == players.PositionUnknown {
			return nil, &badParamError{param: "position", value: part}
		}
		out = append(out, pos)
	}
	return out, nil
}

func parseIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &badParamError{param: name, value: raw}
	}
	return v, nil
}

type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return "invalid " + e.param + ": " + e.value
}
