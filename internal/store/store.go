// Package store owns the in-memory cosmetics, looks, and day-usage
// collections and is the only writer of persisted state. All mutation,
// referential-integrity cleanup, and persistence goes through a Store.
package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/akaver/beautycase/internal/metrics"
)

// Persister abstracts the single-blob snapshot storage. Load returns
// (nil, nil) when no snapshot exists yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
}

// snapshotDoc is the on-disk JSON shape. Field names are part of the storage
// contract; existing snapshots decode without migration.
type snapshotDoc struct {
	Cosmetics []CosmeticItem `json:"cosmetics"`
	Looks     []Look         `json:"looks"`
	Usage     []UsageEntry   `json:"usage"`
}

// Snapshot is a read-only copy of all three collections, safe to use while
// the store keeps mutating.
type Snapshot struct {
	Cosmetics []CosmeticItem
	Looks     []Look
	Usage     []UsageEntry
}

// Store is the authoritative owner of all three collections. Every operation
// is serialized by one mutex: the invariants (dedup, cascade cleanup,
// empty-day purge, save-after-write) are multi-step and must not interleave.
type Store struct {
	mu        sync.RWMutex
	cosmetics []CosmeticItem
	looks     []Look
	usage     []UsageEntry

	persister   Persister
	subscribers []func(cosmetics, looks, usageDays int)
}

// New creates a Store over the given persister. Call Load before first use.
func New(p Persister) *Store {
	return &Store{persister: p}
}

// Subscribe registers fn to run after every state change with the new
// collection sizes. Subscribers are invoked synchronously while the store
// lock is held; keep them cheap. Register during wiring, not concurrently
// with mutations.
func (s *Store) Subscribe(fn func(cosmetics, looks, usageDays int)) {
	s.subscribers = append(s.subscribers, fn)
}

// notify is called with the lock held after every state change.
func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(len(s.cosmetics), len(s.looks), len(s.usage))
	}
}

// Load populates the collections from the persisted snapshot. An absent
// snapshot initializes everything empty. A decode failure is all-or-nothing:
// it is logged and all three collections reset to empty. Idempotent; this is
// the only place collections are populated from persistence.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cosmetics = nil
	s.looks = nil
	s.usage = nil

	defer s.notify()

	data, err := s.persister.Load(ctx)
	if err != nil {
		log.Printf("store: load snapshot: %v", err)
		return
	}
	if data == nil {
		return
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("store: decode snapshot, resetting: %v", err)
		metrics.SnapshotLoadResetsTotal.Inc()
		return
	}

	s.cosmetics = doc.Cosmetics
	s.looks = doc.Looks
	s.usage = doc.Usage
}

// save serializes the three collections as one blob and persists it. On
// failure it logs and leaves in-memory state unchanged; the persisted
// snapshot may then be stale, which is accepted. Called with the lock held
// after every successful mutation.
func (s *Store) save(ctx context.Context) {
	doc := snapshotDoc{Cosmetics: s.cosmetics, Looks: s.looks, Usage: s.usage}
	data, err := json.Marshal(doc)
	if err != nil {
		log.Printf("store: encode snapshot: %v", err)
		return
	}
	if err := s.persister.Save(ctx, data); err != nil {
		log.Printf("store: save snapshot: %v", err)
		metrics.SnapshotSaveErrorsTotal.Inc()
	}
}

// ResetAll clears all three collections and deletes the persisted snapshot.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cosmetics = nil
	s.looks = nil
	s.usage = nil

	if err := s.persister.Delete(ctx); err != nil {
		log.Printf("store: delete snapshot: %v", err)
	}
	s.notify()
}

// SnapshotView returns a copy of all three collections. Inner id lists are
// copied as well so later mutations never leak into the snapshot.
func (s *Store) SnapshotView() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Cosmetics: make([]CosmeticItem, len(s.cosmetics)),
		Looks:     make([]Look, len(s.looks)),
		Usage:     make([]UsageEntry, len(s.usage)),
	}
	copy(snap.Cosmetics, s.cosmetics)
	for i, l := range s.looks {
		l.CosmeticIDs = append([]string(nil), l.CosmeticIDs...)
		snap.Looks[i] = l
	}
	for i, e := range s.usage {
		e.LookIDs = append([]string(nil), e.LookIDs...)
		e.CosmeticIDs = append([]string(nil), e.CosmeticIDs...)
		snap.Usage[i] = e
	}
	return snap
}

// Counts returns the sizes of the three collections.
func (s *Store) Counts() (cosmetics, looks, usageDays int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cosmetics), len(s.looks), len(s.usage)
}
