package store

import "time"

// UsageInRange returns the entries whose parsed day falls within
// [startDate, endDate], inclusive, compared at local start-of-day. Entries
// with unparseable keys are skipped.
func (s *Store) UsageInRange(startDate, endDate time.Time) []UsageEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := startOfDay(startDate)
	end := startOfDay(endDate)

	var out []UsageEntry
	for _, e := range s.usage {
		day, err := ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		out = append(out, copyEntry(e))
	}
	return out
}

// LastUsageDate returns the most recent day on which any item of the given
// category was used, across the entire usage history. Returns the zero time
// and false when the category has never been used.
func (s *Store) LastUsageDate(category Category) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last time.Time
	var found bool
	for _, e := range s.usage {
		day, err := ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		for _, id := range e.CosmeticIDs {
			item, ok := s.cosmeticLocked(id)
			if !ok || item.Category != category {
				continue
			}
			if !found || day.After(last) {
				last = day
				found = true
			}
			break
		}
	}
	return last, found
}

// LooksForDay resolves the looks referenced by the day's entry. Stale ids
// are skipped; result order follows the looks collection.
func (s *Store) LooksForDay(dayKey string) []Look {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.usageIndex(dayKey)
	if i < 0 || len(s.usage[i].LookIDs) == 0 {
		return nil
	}

	var out []Look
	for _, l := range s.looks {
		if containsID(s.usage[i].LookIDs, l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// CosmeticsForDay resolves the items referenced by the day's entry, in the
// entry's reference order. Stale ids are skipped.
func (s *Store) CosmeticsForDay(dayKey string) []CosmeticItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.usageIndex(dayKey)
	if i < 0 {
		return nil
	}

	var out []CosmeticItem
	for _, id := range s.usage[i].CosmeticIDs {
		if item, ok := s.cosmeticLocked(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// TodaysLooks is the today convenience variant of LooksForDay.
func (s *Store) TodaysLooks() []Look {
	return s.LooksForDay(DayKey(time.Now()))
}

// TodaysCosmetics is the today convenience variant of CosmeticsForDay.
func (s *Store) TodaysCosmetics() []CosmeticItem {
	return s.CosmeticsForDay(DayKey(time.Now()))
}

// HasLooksOn reports whether any look was used on the given date.
func (s *Store) HasLooksOn(date time.Time) bool {
	e, ok := s.UsageForDay(DayKey(date))
	return ok && e.HasLooks()
}

// HasCosmeticsOn reports whether any item was used on the given date.
func (s *Store) HasCosmeticsOn(date time.Time) bool {
	e, ok := s.UsageForDay(DayKey(date))
	return ok && e.HasCosmetics()
}

// HasAnyUsageToday reports whether anything at all was used today.
func (s *Store) HasAnyUsageToday() bool {
	_, ok := s.UsageForDay(DayKey(time.Now()))
	return ok
}

// HasAnyCosmeticUsage reports whether any item usage has ever been recorded,
// over the whole history. Gates the neglected-category insight.
func (s *Store) HasAnyCosmeticUsage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.usage {
		if e.HasCosmetics() {
			return true
		}
	}
	return false
}
