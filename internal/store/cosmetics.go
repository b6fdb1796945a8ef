package store

import (
	"context"

	"github.com/google/uuid"
)

// AddCosmetic creates a new item and prepends it to the collection
// (most-recent-first ordering), then saves. Returns the created item, or nil
// when the trimmed name is empty or an enum value is invalid — validation
// failures are silent no-ops.
func (s *Store) AddCosmetic(ctx context.Context, name string, category Category, typ *ItemType, status Status, photo []byte) *CosmeticItem {
	name = trimmed(name)
	if name == "" || !category.Valid() || !status.Valid() {
		return nil
	}
	if typ != nil && !typ.Valid() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := CosmeticItem{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Type:     typ,
		Status:   status,
		Photo:    photo,
	}
	s.cosmetics = append([]CosmeticItem{item}, s.cosmetics...)

	s.save(ctx)
	s.notify()
	return &item
}

// UpdateCosmetic replaces the record at its existing position; the id and
// position are preserved, unlike add. Unknown id or empty trimmed name is a
// silent no-op. Returns the stored item, or nil on no-op.
func (s *Store) UpdateCosmetic(ctx context.Context, item CosmeticItem) *CosmeticItem {
	item.Name = trimmed(item.Name)
	if item.Name == "" || !item.Category.Valid() || !item.Status.Valid() {
		return nil
	}
	if item.Type != nil && !item.Type.Valid() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cosmetics {
		if s.cosmetics[i].ID == item.ID {
			s.cosmetics[i] = item
			s.save(ctx)
			s.notify()
			return &item
		}
	}
	return nil
}

// DeleteCosmetic removes the item and cascades: its id is removed from every
// look's reference list and every usage entry's reference list, and any
// usage entry left with both lists empty is purged. Saves even when the id
// is unknown.
func (s *Store) DeleteCosmetic(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cosmetics[:0]
	for _, c := range s.cosmetics {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.cosmetics = kept

	for i := range s.looks {
		s.looks[i].CosmeticIDs = removeID(s.looks[i].CosmeticIDs, id)
	}
	for i := range s.usage {
		s.usage[i].CosmeticIDs = removeID(s.usage[i].CosmeticIDs, id)
	}
	s.purgeEmptyDays()

	s.save(ctx)
	s.notify()
}

// Cosmetic returns the item with the given id.
func (s *Store) Cosmetic(id string) (CosmeticItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cosmeticLocked(id)
}

// Cosmetics returns all items in collection order (most recently added
// first).
func (s *Store) Cosmetics() []CosmeticItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CosmeticItem, len(s.cosmetics))
	copy(out, s.cosmetics)
	return out
}

// CosmeticsByStatus returns all items with the given status, in collection
// order.
func (s *Store) CosmeticsByStatus(status Status) []CosmeticItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []CosmeticItem
	for _, c := range s.cosmetics {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}
