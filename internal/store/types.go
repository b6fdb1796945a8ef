package store

import (
	"encoding/json"
	"fmt"
)

// Category is the closed set of cosmetic categories. The raw strings are part
// of the on-disk JSON contract and must not change.
type Category string

const (
	CategoryLipstick   Category = "Lipstick"
	CategoryEyeshadow  Category = "Eyeshadow"
	CategoryPowder     Category = "Powder"
	CategoryFoundation Category = "Foundation"
	CategoryMascara    Category = "Mascara"
	CategoryBrows      Category = "Brows"
	CategoryBrushes    Category = "Brushes"
)

// Categories lists all categories in declaration order. Statistics legends use
// this order as the stable tie-break.
var Categories = []Category{
	CategoryLipstick,
	CategoryEyeshadow,
	CategoryPowder,
	CategoryFoundation,
	CategoryMascara,
	CategoryBrows,
	CategoryBrushes,
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown category values. A bad value fails the whole
// snapshot decode; the store treats that as a corrupt snapshot.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Category(s).Valid() {
		return fmt.Errorf("unknown category %q", s)
	}
	*c = Category(s)
	return nil
}

// ItemType is the optional finish/form of an item, independent of category.
type ItemType string

const (
	TypeMatte   ItemType = "Matte"
	TypeRadiant ItemType = "Radiant"
	TypeLiquid  ItemType = "Liquid"
	TypePowder  ItemType = "Powder"
)

// ItemTypes lists all item types in declaration order.
var ItemTypes = []ItemType{TypeMatte, TypeRadiant, TypeLiquid, TypePowder}

// Valid reports whether t is a member of the closed set.
func (t ItemType) Valid() bool {
	for _, known := range ItemTypes {
		if t == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown item type values.
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !ItemType(s).Valid() {
		return fmt.Errorf("unknown item type %q", s)
	}
	*t = ItemType(s)
	return nil
}

// Status is the in-use / in-reserve state of an item.
type Status string

const (
	StatusInUse     Status = "In use"
	StatusInReserve Status = "In reserve"
)

// Statuses lists both statuses.
var Statuses = []Status{StatusInUse, StatusInReserve}

// Valid reports whether s is a member of the closed set.
func (s Status) Valid() bool {
	return s == StatusInUse || s == StatusInReserve
}

// UnmarshalJSON rejects unknown status values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !Status(raw).Valid() {
		return fmt.Errorf("unknown status %q", raw)
	}
	*s = Status(raw)
	return nil
}

// CosmeticItem is a single cataloged cosmetic product.
type CosmeticItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Type     *ItemType `json:"type,omitempty"`
	Status   Status    `json:"status"`
	Photo    []byte    `json:"photoData,omitempty"`
}

// Look is a named bundle of cosmetic item references. Items are held by id
// only; a referenced item may be deleted independently.
type Look struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Note        string   `json:"note,omitempty"`
	CosmeticIDs []string `json:"cosmeticIDs"`
}

// UsageEntry records which looks and items were used on one calendar day.
// The day key is the entry's identity; an entry with both lists empty is
// never kept in the collection.
type UsageEntry struct {
	DayKey      string   `json:"dayKey"`
	LookIDs     []string `json:"lookIDs"`
	CosmeticIDs []string `json:"cosmeticIDs"`
}

// HasLooks reports whether any look was used on this day.
func (e UsageEntry) HasLooks() bool { return len(e.LookIDs) > 0 }

// HasCosmetics reports whether any item was used on this day.
func (e UsageEntry) HasCosmetics() bool { return len(e.CosmeticIDs) > 0 }

func (e UsageEntry) empty() bool { return len(e.LookIDs) == 0 && len(e.CosmeticIDs) == 0 }
