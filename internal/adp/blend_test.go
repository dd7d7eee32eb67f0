package adp

import (
	"context"
	"errors"
	"testing"

	"draft-companion/internal/providers"
)

type stubADPProvider struct {
	tables map[providers.ADPFormat][]providers.ADPEntry
	err    error
}

func (s *stubADPProvider) FetchADP(_ context.Context, format providers.ADPFormat) ([]providers.ADPEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tables[format], nil
}

func TestBlendWeightsStandardAndPPR(t *testing.T) {
	provider := &stubADPProvider{tables: map[providers.ADPFormat][]providers.ADPEntry{
		providers.ADPStandard: {
			{ProviderID: 1, Name: "Player One", NormalizedName: "player one", ADP: 10},
			{ProviderID: 2, Name: "Player Two", NormalizedName: "player two", ADP: 20},
		},
		providers.ADPPPR: {
			{ProviderID: 1, Name: "Player One", NormalizedName: "player one", ADP: 5},
			{ProviderID: 3, Name: "Player Three", NormalizedName: "player three", ADP: 8},
		},
	}}

	blender := NewBlender(provider, Weights{Standard: 0.4, PPR: 0.6}, nil)
	entries, err := blender.Table(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// inner join: only ProviderID 1 appears in both tables
	if len(entries) != 1 {
		t.Fatalf("expected 1 blended entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].ADP != 0.4*10+0.6*5 {
		t.Fatalf("expected blended adp 7.0, got %v", entries[0].ADP)
	}
	if entries[0].Name != "Player One" {
		t.Fatalf("expected name carried from standard table, got %q", entries[0].Name)
	}
}

func TestBlendRejectsInvalidWeights(t *testing.T) {
	provider := &stubADPProvider{tables: map[providers.ADPFormat][]providers.ADPEntry{}}
	blender := NewBlender(provider, Weights{Standard: 0.5, PPR: 0.6}, nil)
	if _, err := blender.Table(context.Background(), true); err == nil {
		t.Fatal("expected error for weights not summing to 1")
	}
}

func TestBlendSortsByADP(t *testing.T) {
	provider := &stubADPProvider{tables: map[providers.ADPFormat][]providers.ADPEntry{
		providers.ADPStandard: {
			{ProviderID: 1, ADP: 30},
			{ProviderID: 2, ADP: 10},
		},
		providers.ADPPPR: {
			{ProviderID: 1, ADP: 30},
			{ProviderID: 2, ADP: 10},
		},
	}}

	blender := NewBlender(provider, DefaultWeights, nil)
	entries, err := blender.Table(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 || entries[0].ProviderID != 2 {
		t.Fatalf("expected ascending adp order, got %+v", entries)
	}
}

func TestRookieTablePassthrough(t *testing.T) {
	provider := &stubADPProvider{tables: map[providers.ADPFormat][]providers.ADPEntry{
		providers.ADPRookie: {
			{ProviderID: 7, Name: "Rookie Back", ADP: 4},
			{ProviderID: 8, Name: "Rookie Receiver", ADP: 2},
		},
	}}

	blender := NewBlender(provider, DefaultWeights, nil)
	entries, err := blender.Table(context.Background(), false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 || entries[0].ProviderID != 8 {
		t.Fatalf("expected rookie table sorted by adp, got %+v", entries)
	}
}

func TestBlendPropagatesFetchError(t *testing.T) {
	want := errors.New("upstream down")
	blender := NewBlender(&stubADPProvider{err: want}, DefaultWeights, nil)
	if _, err := blender.Table(context.Background(), true); !errors.Is(err, want) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestZeroWeightsFallBackToDefaults(t *testing.T) {
	provider := &stubADPProvider{tables: map[providers.ADPFormat][]providers.ADPEntry{
		providers.ADPStandard: {{ProviderID: 1, ADP: 10}},
		providers.ADPPPR:      {{ProviderID: 1, ADP: 5}},
	}}

	blender := NewBlender(provider, Weights{}, nil)
	entries, err := blender.Table(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if entries[0].ADP != 7 {
		t.Fatalf("expected default-weight blend 7.0, got %v", entries[0].ADP)
	}
}
