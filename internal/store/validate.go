package store

import "strings"

// trimmed collapses surrounding whitespace. An all-whitespace value trims to
// the empty string, which every mutation treats as a validation failure.
func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// uniqueOrdered removes duplicate ids keeping the first occurrence, order
// otherwise preserved. Every id list the store accepts passes through here.
func uniqueOrdered(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// removeID filters id out of ids, preserving order. Always returns a fresh
// slice: stored id lists are handed out to readers and must not be filtered
// in place.
func removeID(ids []string, id string) []string {
	result := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}

// containsID reports whether ids contains id.
func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
