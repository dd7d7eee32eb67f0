package roster

import (
	"testing"

	"draft-companion/internal/domain/picks"
	"draft-companion/internal/domain/players"
)

func enrichedPick(pickNo int, username string, position players.Position) picks.EnrichedPick {
	return picks.EnrichedPick{
		Pick:     picks.Pick{PickNo: pickNo, Round: (pickNo-1)/12 + 1, PlayerID: "p"},
		Username: username,
		Player:   &players.Player{PlayerID: "p", Position: position},
	}
}

func TestBuildFiltersAndSortsByPosition(t *testing.T) {
	enriched := []picks.EnrichedPick{
		enrichedPick(1, "alice", players.PositionRB),
		enrichedPick(2, "bob", players.PositionWR),
		enrichedPick(13, "alice", players.PositionQB),
		enrichedPick(25, "alice", players.PositionWR),
	}

	roster := Build("alice", enriched)
	if roster.Size() != 3 {
		t.Fatalf("expected 3 picks, got %d", roster.Size())
	}

	// QB, WR, RB per the fixed position order
	wantPositions := []players.Position{players.PositionQB, players.PositionWR, players.PositionRB}
	for i, want := range wantPositions {
		if roster.Picks[i].Player.Position != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, roster.Picks[i].Player.Position)
		}
	}
}

func TestBuildReportsZeroCounts(t *testing.T) {
	enriched := []picks.EnrichedPick{
		enrichedPick(1, "alice", players.PositionRB),
		enrichedPick(13, "alice", players.PositionRB),
	}

	roster := Build("alice", enriched)
	if len(roster.Counts) != len(players.PositionOrder) {
		t.Fatalf("expected counts for every position, got %d", len(roster.Counts))
	}

	counts := make(map[players.Position]int)
	for _, c := range roster.Counts {
		counts[c.Position] = c.Count
	}
	if counts[players.PositionRB] != 2 {
		t.Fatalf("expected 2 RBs, got %d", counts[players.PositionRB])
	}
	if counts[players.PositionQB] != 0 || counts[players.PositionDEF] != 0 {
		t.Fatalf("expected zero counts present, got %+v", roster.Counts)
	}

	// order matches the fixed position order
	for i, pos := range players.PositionOrder {
		if roster.Counts[i].Position != pos {
			t.Fatalf("count %d: expected %s, got %s", i, pos, roster.Counts[i].Position)
		}
	}
}

func TestBuildUnresolvedPlayersSortLast(t *testing.T) {
	missing := picks.EnrichedPick{
		Pick:     picks.Pick{PickNo: 1, Round: 1, PlayerID: "ghost"},
		Username: "alice",
	}
	enriched := []picks.EnrichedPick{
		missing,
		enrichedPick(13, "alice", players.PositionDEF),
	}

	roster := Build("alice", enriched)
	if roster.Picks[1].Player != nil {
		t.Fatalf("expected unresolved pick last, got %+v", roster.Picks)
	}
	if roster.Size() != 2 {
		t.Fatalf("expected unresolved pick kept on roster, got %d", roster.Size())
	}
}

func TestBuildAll(t *testing.T) {
	enriched := []picks.EnrichedPick{
		enrichedPick(1, "bob", players.PositionRB),
		enrichedPick(2, "alice", players.PositionWR),
		{Pick: picks.Pick{PickNo: 3, Round: 1}, Username: picks.BotUsername},
	}

	all := BuildAll(enriched)
	if len(all) != 3 {
		t.Fatalf("expected 3 rosters, got %d", len(all))
	}
	if all[0].Username != picks.BotUsername || all[1].Username != "alice" || all[2].Username != "bob" {
		t.Fatalf("expected username order, got %+v", all)
	}
}
