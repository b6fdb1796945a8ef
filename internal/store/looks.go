package store

import (
	"context"

	"github.com/google/uuid"
)

// AddLook creates a new look and prepends it to the collection, then saves.
// The cosmetic id list is de-duplicated keeping first occurrences; a note
// that trims to empty is stored as absent. Empty trimmed title is a silent
// no-op. Returns the created look, or nil on no-op.
func (s *Store) AddLook(ctx context.Context, title, note string, cosmeticIDs []string) *Look {
	title = trimmed(title)
	if title == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	look := Look{
		ID:          uuid.New().String(),
		Title:       title,
		Note:        trimmed(note),
		CosmeticIDs: uniqueOrdered(cosmeticIDs),
	}
	s.looks = append([]Look{look}, s.looks...)

	s.save(ctx)
	s.notify()
	return &look
}

// UpdateLook replaces the look at its existing position, id and position
// preserved. Unknown id or empty trimmed title is a silent no-op. Returns
// the stored look, or nil on no-op.
func (s *Store) UpdateLook(ctx context.Context, look Look) *Look {
	look.Title = trimmed(look.Title)
	if look.Title == "" {
		return nil
	}
	look.Note = trimmed(look.Note)
	look.CosmeticIDs = uniqueOrdered(look.CosmeticIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.looks {
		if s.looks[i].ID == look.ID {
			s.looks[i] = look
			s.save(ctx)
			s.notify()
			return &look
		}
	}
	return nil
}

// DeleteLook removes the look and cascades its id out of every usage entry,
// purging entries left with both lists empty. Saves even when the id is
// unknown.
func (s *Store) DeleteLook(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.looks[:0]
	for _, l := range s.looks {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.looks = kept

	for i := range s.usage {
		s.usage[i].LookIDs = removeID(s.usage[i].LookIDs, id)
	}
	s.purgeEmptyDays()

	s.save(ctx)
	s.notify()
}

// Look returns the look with the given id.
func (s *Store) Look(id string) (Look, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookLocked(id)
}

func (s *Store) lookLocked(id string) (Look, bool) {
	for _, l := range s.looks {
		if l.ID == id {
			return l, true
		}
	}
	return Look{}, false
}

// Looks returns all looks in collection order (most recently added first).
func (s *Store) Looks() []Look {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Look, len(s.looks))
	copy(out, s.looks)
	return out
}

// CosmeticsForLook resolves up to limit of the look's referenced items.
// Stale ids that no longer resolve are skipped.
func (s *Store) CosmeticsForLook(look Look, limit int) []CosmeticItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := look.CosmeticIDs
	if limit >= 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	result := make([]CosmeticItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.cosmeticLocked(id); ok {
			result = append(result, item)
		}
	}
	return result
}

func (s *Store) cosmeticLocked(id string) (CosmeticItem, bool) {
	for _, c := range s.cosmetics {
		if c.ID == id {
			return c, true
		}
	}
	return CosmeticItem{}, false
}
