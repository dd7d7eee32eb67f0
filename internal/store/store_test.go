package store

import (
	"testing"
	"time"

	"draft-companion/internal/board"
)

func TestMemoryStoreEmptyReturnsNil(t *testing.T) {
	s := NewMemoryStore()
	if got := s.Snapshot(); got != nil {
		t.Fatalf("expected nil before first publish, got %+v", got)
	}
}

func TestMemoryStorePublishReplaces(t *testing.T) {
	s := NewMemoryStore()

	first := &board.Snapshot{UpdatedAt: time.Unix(1, 0)}
	second := &board.Snapshot{UpdatedAt: time.Unix(2, 0)}

	s.Publish(first)
	s.Publish(second)

	got := s.Snapshot()
	if got != second {
		t.Fatalf("expected latest snapshot, got %+v", got)
	}
}
