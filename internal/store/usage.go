package store

import "context"

// UsageForDay returns the usage entry for the given day key.
func (s *Store) UsageForDay(dayKey string) (UsageEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.usageIndex(dayKey); i >= 0 {
		return copyEntry(s.usage[i]), true
	}
	return UsageEntry{}, false
}

// copyEntry detaches an entry's id lists from the store's backing arrays.
func copyEntry(e UsageEntry) UsageEntry {
	e.LookIDs = append([]string(nil), e.LookIDs...)
	e.CosmeticIDs = append([]string(nil), e.CosmeticIDs...)
	return e
}

func (s *Store) usageIndex(dayKey string) int {
	for i := range s.usage {
		if s.usage[i].DayKey == dayKey {
			return i
		}
	}
	return -1
}

// ensureUsageIndex returns the index of the entry for dayKey, lazily creating
// an empty entry when none exists. Callers must purge via purgeEmptyDays (or
// purgeDayIfEmpty) before releasing the lock so the never-store-an-empty-entry
// invariant holds.
func (s *Store) ensureUsageIndex(dayKey string) int {
	if i := s.usageIndex(dayKey); i >= 0 {
		return i
	}
	s.usage = append(s.usage, UsageEntry{DayKey: dayKey})
	return len(s.usage) - 1
}

// purgeDayIfEmpty removes the entry at index i when both its lists are empty.
// Single choke point for the empty-entry invariant on single-day mutations.
func (s *Store) purgeDayIfEmpty(i int) {
	if i < 0 || i >= len(s.usage) {
		return
	}
	if s.usage[i].empty() {
		s.usage = append(s.usage[:i], s.usage[i+1:]...)
	}
}

// purgeEmptyDays removes every entry whose lists are both empty. Used by the
// cascade paths, which can empty several days at once.
func (s *Store) purgeEmptyDays() {
	kept := s.usage[:0]
	for _, e := range s.usage {
		if !e.empty() {
			kept = append(kept, e)
		}
	}
	s.usage = kept
}

// SetUsageForDay fully replaces both id lists for the day (dedup applied).
// Setting both lists empty removes the entry.
func (s *Store) SetUsageForDay(ctx context.Context, dayKey string, lookIDs, cosmeticIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ensureUsageIndex(dayKey)
	s.usage[i].LookIDs = uniqueOrdered(lookIDs)
	s.usage[i].CosmeticIDs = uniqueOrdered(cosmeticIDs)
	s.purgeDayIfEmpty(i)

	s.save(ctx)
	s.notify()
}

// ClearDay removes the day's entry entirely.
func (s *Store) ClearDay(ctx context.Context, dayKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.usageIndex(dayKey); i >= 0 {
		s.usage = append(s.usage[:i], s.usage[i+1:]...)
	}
	s.save(ctx)
	s.notify()
}

// AddLookToDay appends the look id to the day's list with set semantics
// (duplicate adds are no-ops and do not save).
func (s *Store) AddLookToDay(ctx context.Context, dayKey, lookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ensureUsageIndex(dayKey)
	if containsID(s.usage[i].LookIDs, lookID) {
		return
	}
	s.usage[i].LookIDs = append(s.usage[i].LookIDs, lookID)

	s.save(ctx)
	s.notify()
}

// RemoveLookFromDay removes the look id from the day's list, purging the
// entry when both lists end up empty. Unknown day is a silent no-op.
func (s *Store) RemoveLookFromDay(ctx context.Context, dayKey, lookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.usageIndex(dayKey)
	if i < 0 {
		return
	}
	s.usage[i].LookIDs = removeID(s.usage[i].LookIDs, lookID)
	s.purgeDayIfEmpty(i)

	s.save(ctx)
	s.notify()
}

// AddCosmeticToDay appends the item id to the day's list with set semantics.
func (s *Store) AddCosmeticToDay(ctx context.Context, dayKey, cosmeticID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.ensureUsageIndex(dayKey)
	if containsID(s.usage[i].CosmeticIDs, cosmeticID) {
		return
	}
	s.usage[i].CosmeticIDs = append(s.usage[i].CosmeticIDs, cosmeticID)

	s.save(ctx)
	s.notify()
}

// RemoveCosmeticFromDay removes the item id from the day's list, purging the
// entry when both lists end up empty. Unknown day is a silent no-op.
func (s *Store) RemoveCosmeticFromDay(ctx context.Context, dayKey, cosmeticID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.usageIndex(dayKey)
	if i < 0 {
		return
	}
	s.usage[i].CosmeticIDs = removeID(s.usage[i].CosmeticIDs, cosmeticID)
	s.purgeDayIfEmpty(i)

	s.save(ctx)
	s.notify()
}
