package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akaver/beautycase/internal/db"
	"github.com/akaver/beautycase/internal/store"
	"github.com/akaver/beautycase/internal/testutil"
)

// newTestStore wires a Store over an in-memory SQLite snapshot store with
// migrations applied, mirroring the production wiring.
func newTestStore(t *testing.T) (*store.Store, *db.SnapshotStore) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	s := store.New(snapshots)
	s.Load(context.Background())
	return s, snapshots
}

// failingPersister errors on every save, for the stale-snapshot path.
type failingPersister struct{}

func (failingPersister) Load(ctx context.Context) ([]byte, error) { return nil, nil }
func (failingPersister) Save(ctx context.Context, d []byte) error { return errors.New("disk full") }
func (failingPersister) Delete(ctx context.Context) error         { return nil }

func TestStore_LoadAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	c, l, u := s.Counts()
	if c != 0 || l != 0 || u != 0 {
		t.Errorf("counts = (%d, %d, %d), want all zero", c, l, u)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	ctx := context.Background()

	s := store.New(snapshots)
	s.Load(ctx)

	item := s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)
	if item == nil {
		t.Fatal("AddCosmetic returned nil")
	}
	look := s.AddLook(ctx, "Date Night", "soft glam", []string{item.ID})
	if look == nil {
		t.Fatal("AddLook returned nil")
	}
	s.AddCosmeticToDay(ctx, "2025-01-10", item.ID)

	// A second store over the same database sees the persisted state.
	s2 := store.New(snapshots)
	s2.Load(ctx)

	got, ok := s2.Cosmetic(item.ID)
	if !ok {
		t.Fatal("item not found after reload")
	}
	if got.Name != "Red Lip" || got.Category != store.CategoryLipstick || got.Status != store.StatusInUse {
		t.Errorf("reloaded item = %+v", got)
	}
	if _, ok := s2.Look(look.ID); !ok {
		t.Error("look not found after reload")
	}
	entry, ok := s2.UsageForDay("2025-01-10")
	if !ok {
		t.Fatal("usage entry not found after reload")
	}
	if len(entry.CosmeticIDs) != 1 || entry.CosmeticIDs[0] != item.ID {
		t.Errorf("entry.CosmeticIDs = %v, want [%s]", entry.CosmeticIDs, item.ID)
	}
}

func TestStore_LoadCorruptSnapshotResets(t *testing.T) {
	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	ctx := context.Background()

	s := store.New(snapshots)
	s.Load(ctx)
	s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)

	if err := snapshots.Save(ctx, []byte(`{"cosmetics": [nope`)); err != nil {
		t.Fatalf("corrupt snapshot: %v", err)
	}

	s.Load(ctx)
	c, l, u := s.Counts()
	if c != 0 || l != 0 || u != 0 {
		t.Errorf("counts after corrupt load = (%d, %d, %d), want all zero", c, l, u)
	}
}

func TestStore_LoadUnknownEnumResets(t *testing.T) {
	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	ctx := context.Background()

	blob := `{"cosmetics":[{"id":"x","name":"Mystery","category":"Blush","status":"In use"}],"looks":[],"usage":[]}`
	if err := snapshots.Save(ctx, []byte(blob)); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	s := store.New(snapshots)
	s.Load(ctx)
	c, _, _ := s.Counts()
	if c != 0 {
		t.Errorf("cosmetics = %d, want 0 (unknown enum must fail the whole decode)", c)
	}
}

func TestStore_ResetAll(t *testing.T) {
	s, snapshots := newTestStore(t)
	ctx := context.Background()

	s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)
	s.ResetAll(ctx)

	c, l, u := s.Counts()
	if c != 0 || l != 0 || u != 0 {
		t.Errorf("counts = (%d, %d, %d), want all zero", c, l, u)
	}
	data, err := snapshots.Load(ctx)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if data != nil {
		t.Errorf("snapshot still present after reset: %q", data)
	}
}

func TestStore_SaveFailureKeepsMemory(t *testing.T) {
	s := store.New(failingPersister{})
	ctx := context.Background()
	s.Load(ctx)

	item := s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)
	if item == nil {
		t.Fatal("AddCosmetic returned nil")
	}
	if _, ok := s.Cosmetic(item.ID); !ok {
		t.Error("in-memory state lost after save failure")
	}
}

func TestStore_SubscriberSeesCounts(t *testing.T) {
	conn := testutil.NewTestDB(t)
	snapshots := db.NewSnapshotStore(conn, db.StorageKey)
	s := store.New(snapshots)

	var gotCosmetics, gotLooks, gotDays int
	s.Subscribe(func(c, l, u int) {
		gotCosmetics, gotLooks, gotDays = c, l, u
	})

	ctx := context.Background()
	s.Load(ctx)
	s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)
	if gotCosmetics != 1 || gotLooks != 0 || gotDays != 0 {
		t.Errorf("subscriber saw (%d, %d, %d), want (1, 0, 0)", gotCosmetics, gotLooks, gotDays)
	}
}
