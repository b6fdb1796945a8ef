package store

import (
	"fmt"
	"time"
)

// dayKeyLayout is the fixed, locale-independent parse layout for day keys.
const dayKeyLayout = "2006-01-02"

// DayKey maps a date to its canonical day key using the local calendar's
// year/month/day components, zero-padded. The key is the sole identity of a
// usage entry and the sole join key between dates and usage data.
func DayKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDayKey is the inverse of DayKey for all valid keys. The returned time
// is midnight local time on that day. It returns an error for anything that
// is not a zero-padded YYYY-MM-DD Gregorian date.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
