package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/akaver/beautycase/internal/store"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := store.ParseDayKey(key)
	if err != nil {
		t.Fatalf("ParseDayKey(%q): %v", key, err)
	}
	return d
}

func TestUsageInRange_InclusiveBounds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"2025-01-09", "2025-01-10", "2025-01-15", "2025-01-16"} {
		s.AddLookToDay(ctx, key, "l1")
	}

	got := s.UsageInRange(day(t, "2025-01-10"), day(t, "2025-01-15"))
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	keys := map[string]bool{}
	for _, e := range got {
		keys[e.DayKey] = true
	}
	if !keys["2025-01-10"] || !keys["2025-01-15"] {
		t.Errorf("keys = %v, want both boundary days", keys)
	}
}

func TestUsageInRange_MidDayTimestamps(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddLookToDay(context.Background(), "2025-01-10", "l1")

	// range endpoints are normalized to start of day before comparing
	start := day(t, "2025-01-10").Add(18 * time.Hour)
	end := day(t, "2025-01-10").Add(23 * time.Hour)
	if got := s.UsageInRange(start, end); len(got) != 1 {
		t.Errorf("got %d entries, want 1", len(got))
	}
}

func TestLastUsageDate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	lip := s.AddCosmetic(ctx, "Red Lip", store.CategoryLipstick, nil, store.StatusInUse, nil)
	s.AddCosmeticToDay(ctx, "2025-01-05", lip.ID)
	s.AddCosmeticToDay(ctx, "2025-01-12", lip.ID)
	s.AddCosmeticToDay(ctx, "2025-01-08", lip.ID)

	last, ok := s.LastUsageDate(store.CategoryLipstick)
	if !ok {
		t.Fatal("expected a usage date")
	}
	if got := store.DayKey(last); got != "2025-01-12" {
		t.Errorf("last = %s, want 2025-01-12", got)
	}

	if _, ok := s.LastUsageDate(store.CategoryMascara); ok {
		t.Error("category with no usage must report false")
	}
}

func TestLastUsageDate_IgnoresStaleRefs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetUsageForDay(ctx, "2025-01-05", nil, []string{"deleted-item"})
	if _, ok := s.LastUsageDate(store.CategoryLipstick); ok {
		t.Error("unresolvable reference must not count toward any category")
	}
}

func TestLooksForDay_FollowsCollectionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	older := s.AddLook(ctx, "Older", "", nil)
	newer := s.AddLook(ctx, "Newer", "", nil)
	s.AddLookToDay(ctx, "2025-01-10", older.ID)
	s.AddLookToDay(ctx, "2025-01-10", newer.ID)

	got := s.LooksForDay("2025-01-10")
	if len(got) != 2 {
		t.Fatalf("got %d looks, want 2", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Error("resolution must follow the looks collection, most recent first")
	}
}

func TestCosmeticsForDay_FollowsEntryOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a := s.AddCosmetic(ctx, "A", store.CategoryLipstick, nil, store.StatusInUse, nil)
	b := s.AddCosmetic(ctx, "B", store.CategoryPowder, nil, store.StatusInUse, nil)
	s.AddCosmeticToDay(ctx, "2025-01-10", b.ID)
	s.AddCosmeticToDay(ctx, "2025-01-10", a.ID)
	s.SetUsageForDay(ctx, "2025-01-10", nil, []string{b.ID, "stale", a.ID})

	got := s.CosmeticsForDay("2025-01-10")
	if len(got) != 2 || got[0].ID != b.ID || got[1].ID != a.ID {
		t.Errorf("resolution = %+v, want entry order with stale ref skipped", got)
	}
}

func TestHasAnyCosmeticUsage(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if s.HasAnyCosmeticUsage() {
		t.Error("fresh store must report no usage")
	}

	s.AddLookToDay(ctx, "2025-01-10", "l1")
	if s.HasAnyCosmeticUsage() {
		t.Error("look-only usage must not count as cosmetic usage")
	}

	s.AddCosmeticToDay(ctx, "2025-01-11", "c1")
	if !s.HasAnyCosmeticUsage() {
		t.Error("cosmetic usage should be visible")
	}
}

func TestHasLooksOnAndHasCosmeticsOn(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddLookToDay(ctx, "2025-01-10", "l1")
	d := day(t, "2025-01-10")

	if !s.HasLooksOn(d) {
		t.Error("HasLooksOn = false, want true")
	}
	if s.HasCosmeticsOn(d) {
		t.Error("HasCosmeticsOn = true, want false")
	}
}
