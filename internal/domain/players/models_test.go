package players

import "testing"

func TestParsePosition(t *testing.T) {
	for _, pos := range PositionOrder {
		if got := ParsePosition(string(pos)); got != pos {
			t.Fatalf("ParsePosition(%q) = %q", pos, got)
		}
	}
	if got := ParsePosition("OL"); got != PositionUnknown {
		t.Fatalf("expected unknown position, got %q", got)
	}
	if got := ParsePosition(""); got != PositionUnknown {
		t.Fatalf("expected unknown position for empty input, got %q", got)
	}
}

func TestSortRankOrdersUnknownLast(t *testing.T) {
	if PositionQB.SortRank() != 0 {
		t.Fatalf("expected QB first, got rank %d", PositionQB.SortRank())
	}
	if PositionDEF.SortRank() != len(PositionOrder)-1 {
		t.Fatalf("expected DEF last of listed positions")
	}
	if PositionUnknown.SortRank() <= PositionDEF.SortRank() {
		t.Fatalf("expected unknown positions to rank after listed positions")
	}
}

func TestTiered(t *testing.T) {
	if (Player{}).Tiered() {
		t.Fatal("zero tier must read as untiered")
	}
	if !(Player{Tier: 1}).Tiered() {
		t.Fatal("tier 1 must read as tiered")
	}
}
