// Package store keeps the latest published draft snapshot in memory.
package store

import (
	"sync"

	"draft-companion/internal/board"
)

// MemoryStore holds the most recent reconciled snapshot behind a
// read-write lock. Snapshots are replaced wholesale, never patched, so
// readers always see a consistent view.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot *board.Snapshot
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot returns the latest published snapshot, or nil when nothing has
// been published yet.
func (s *MemoryStore) Snapshot() *board.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Publish replaces the current snapshot.
func (s *MemoryStore) Publish(snapshot *board.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
