package picks

import (
	"testing"

	"draft-companion/internal/domain/players"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]DraftStatus{
		"pre_draft": StatusPreDraft,
		"drafting":  StatusDrafting,
		"paused":    StatusPaused,
		"complete":  StatusComplete,
		"archived":  StatusUnknown,
		"":          StatusUnknown,
	}
	for raw, want := range cases {
		if got := ParseStatus(raw); got != want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !StatusComplete.Terminal() {
		t.Fatal("complete must be terminal")
	}
	for _, s := range []DraftStatus{StatusPreDraft, StatusDrafting, StatusPaused, StatusUnknown} {
		if s.Terminal() {
			t.Fatalf("%q must not be terminal", s)
		}
	}
}

func TestTableDropsAllEmptyColumns(t *testing.T) {
	enriched := []EnrichedPick{
		{Pick: Pick{PickNo: 1, Round: 1, DraftSlot: 3, PlayerID: "101"}, Username: "alice"},
		{Pick: Pick{PickNo: 2, Round: 1, DraftSlot: 4, PlayerID: "102"}, Username: BotUsername},
	}

	header, rows := Table(enriched)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, col := range header {
		switch col {
		case "full_name", "position", "team", "adp", "tier":
			t.Fatalf("column %q is empty in every row and should have been dropped", col)
		}
	}
	if header[0] != "pick_no" || rows[0][0] != "1" {
		t.Fatalf("unexpected table shape: header=%v rows=%v", header, rows)
	}
}

func TestTableKeepsPartiallyEmptyColumns(t *testing.T) {
	enriched := []EnrichedPick{
		{
			Pick:     Pick{PickNo: 1, Round: 1, DraftSlot: 1, PlayerID: "101"},
			Username: "alice",
			Player:   &players.Player{PlayerID: "101", FullName: "Justin Jefferson", Position: players.PositionWR, Team: "MIN", ADP: 3.5},
		},
		// Catalog miss: player columns blank for this row but kept overall.
		{Pick: Pick{PickNo: 2, Round: 1, DraftSlot: 2, PlayerID: "999"}, Username: "bob"},
	}

	header, rows := Table(enriched)
	idx := -1
	for i, col := range header {
		if col == "full_name" {
			idx = i
		}
	}
	if idx == -1 {
		t.Fatalf("expected full_name column to survive, header=%v", header)
	}
	if rows[0][idx] != "Justin Jefferson" || rows[1][idx] != "" {
		t.Fatalf("unexpected full_name cells: %q, %q", rows[0][idx], rows[1][idx])
	}
}
