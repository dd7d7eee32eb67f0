package picks

import (
	"time"

	"draft-companion/internal/domain/players"
)

// DraftStatus mirrors the lifecycle states reported by the draft platform.
// Transitions are observed from upstream, never commanded locally.
type DraftStatus string

const (
	StatusPreDraft DraftStatus = "pre_draft"
	StatusDrafting DraftStatus = "drafting"
	StatusPaused   DraftStatus = "paused"
	StatusComplete DraftStatus = "complete"
	// StatusUnknown tags values the upstream reports that we do not
	// recognize. The loop logs and treats them as a no-op rather than
	// rejecting the poll.
	StatusUnknown DraftStatus = "unknown"
)

// ParseStatus maps an upstream status string to a DraftStatus.
func ParseStatus(raw string) DraftStatus {
	switch DraftStatus(raw) {
	case StatusPreDraft, StatusDrafting, StatusPaused, StatusComplete:
		return DraftStatus(raw)
	default:
		return StatusUnknown
	}
}

// Terminal reports whether the draft has finished.
func (s DraftStatus) Terminal() bool {
	return s == StatusComplete
}

// DraftInfo is the normalized draft resource returned by the platform.
// StartTime is nil when the draft has no scheduled start.
type DraftInfo struct {
	DraftID   string         `json:"draftId"`
	Type      string         `json:"type"`
	Status    DraftStatus    `json:"status"`
	StartTime *time.Time     `json:"startTime,omitempty"`
	Settings  map[string]int `json:"settings,omitempty"`
	Order     map[string]int `json:"order,omitempty"`
}

// Pick is one selection event in the draft. PickNo is 1-based and strictly
// increasing in arrival order; the upstream pick list is append-only while
// the draft status is drafting.
type Pick struct {
	PickNo    int    `json:"pickNo"`
	Round     int    `json:"round"`
	DraftSlot int    `json:"draftSlot"`
	PlayerID  string `json:"playerId"`
	PickedBy  string `json:"pickedBy,omitempty"`
	IsKeeper  bool   `json:"isKeeper,omitempty"`
}

// BotUsername labels picks whose owner could not be resolved: autopicks,
// bot slots, and unknown external user ids.
const BotUsername = "Bot"

// EnrichedPick is a Pick joined onto the player catalog. Player is nil when
// the catalog has no row for the picked id (a stale-catalog miss is
// tolerated, never an error). Username is resolved through the caller's
// user registry; unresolved owners read as BotUsername.
type EnrichedPick struct {
	Pick
	Username string          `json:"username"`
	Player   *players.Player `json:"player,omitempty"`
}
