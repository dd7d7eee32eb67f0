package catalog

import (
	"context"
	"errors"
	"testing"

	"draft-companion/internal/domain/players"
	"draft-companion/internal/providers"
)

type stubPlayerProvider struct {
	players []players.Player
	err     error
}

func (s *stubPlayerProvider) FetchPlayers(context.Context) ([]players.Player, error) {
	return s.players, s.err
}

type stubADPSource struct {
	entries []providers.ADPEntry
	err     error
}

func (s *stubADPSource) Table(context.Context, bool) ([]providers.ADPEntry, error) {
	return s.entries, s.err
}

type stubTierSource struct {
	entries []TierEntry
	err     error
}

func (s *stubTierSource) Tiers(context.Context) ([]TierEntry, error) {
	return s.entries, s.err
}

func TestBuildJoinsADPAndTiers(t *testing.T) {
	playerProvider := &stubPlayerProvider{players: []players.Player{
		{PlayerID: "1", FullName: "Alpha Back", NormalizedName: "alpha back", Position: players.PositionRB},
		{PlayerID: "2", FullName: "Bravo Receiver", NormalizedName: "bravo receiver", Position: players.PositionWR},
	}}
	adpSource := &stubADPSource{entries: []providers.ADPEntry{
		{NormalizedName: "bravo receiver", ADP: 2.5},
		{NormalizedName: "alpha back", ADP: 8},
	}}
	tierSource := &stubTierSource{entries: []TierEntry{
		{NormalizedName: "bravo receiver", Tier: 1, Rank: 3},
	}}

	builder := NewBuilder(playerProvider, adpSource, tierSource, true, nil)
	catalog, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(catalog) != 2 || catalog[0].PlayerID != "2" {
		t.Fatalf("expected adp-sorted catalog, got %+v", catalog)
	}
	if catalog[0].Tier != 1 || catalog[0].TierRank != 3 {
		t.Fatalf("expected tier joined, got %+v", catalog[0])
	}
	if catalog[1].Tiered() {
		t.Fatalf("expected untiered player, got %+v", catalog[1])
	}
}

func TestBuildWithoutTierSource(t *testing.T) {
	playerProvider := &stubPlayerProvider{players: []players.Player{
		{PlayerID: "1", NormalizedName: "alpha back"},
	}}
	adpSource := &stubADPSource{}

	builder := NewBuilder(playerProvider, adpSource, nil, true, nil)
	catalog, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(catalog) != 1 || catalog[0].Tiered() {
		t.Fatalf("expected untiered catalog, got %+v", catalog)
	}
}

func TestBuildPropagatesErrors(t *testing.T) {
	wantPlayers := errors.New("players down")
	builder := NewBuilder(&stubPlayerProvider{err: wantPlayers}, &stubADPSource{}, nil, true, nil)
	if _, err := builder.Build(context.Background()); !errors.Is(err, wantPlayers) {
		t.Fatalf("expected player fetch error, got %v", err)
	}

	wantADP := errors.New("adp down")
	builder = NewBuilder(&stubPlayerProvider{}, &stubADPSource{err: wantADP}, nil, true, nil)
	if _, err := builder.Build(context.Background()); !errors.Is(err, wantADP) {
		t.Fatalf("expected adp fetch error, got %v", err)
	}
}

func TestApplyTiersFirstMatchWins(t *testing.T) {
	catalog := []players.Player{
		{PlayerID: "1", NormalizedName: "same name"},
		{PlayerID: "2", NormalizedName: "same name"},
	}
	builder := NewBuilder(nil, nil, nil, true, nil)
	builder.applyTiers(catalog, []TierEntry{{NormalizedName: "same name", Tier: 2, Rank: 1}})

	if catalog[0].Tier != 2 {
		t.Fatalf("expected first player tiered, got %+v", catalog[0])
	}
	if catalog[1].Tier != 0 {
		t.Fatalf("expected second claimant untiered, got %+v", catalog[1])
	}
}
