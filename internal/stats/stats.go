// Package stats computes usage statistics over a store snapshot. All
// computation is pure: nothing here mutates the store or persists anything.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/akaver/beautycase/internal/store"
)

// Range selects the trailing window the report covers, anchored at local
// start-of-day including today.
type Range string

const (
	RangeWeek  Range = "week"  // trailing 7 days
	RangeMonth Range = "month" // trailing 30 days
)

// ParseRange maps the wire value to a Range.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeWeek, RangeMonth:
		return Range(s), nil
	default:
		return "", fmt.Errorf("unknown range %q: must be week or month", s)
	}
}

// days returns the window length in days.
func (r Range) days() int {
	if r == RangeMonth {
		return 30
	}
	return 7
}

// LegendRow is one category share of the tallied usage.
type LegendRow struct {
	Category store.Category
	Percent  int
}

// Report is the display model for one statistics window.
type Report struct {
	Range       Range
	TotalCount  int    // resolved cosmetic references tallied in the window
	PeriodStart string // header date, dd.MM.yyyy
	PeriodEnd   string
	Legend      []LegendRow
	Favorite    string // favorite-item insight, "" when none
	Gap         string // neglected-category insight, "" when none
}

const headerDateLayout = "02.01.2006"

// Build computes the report for the window ending at now. The snapshot's
// usage history outside the window feeds only the lifetime fallbacks of the
// gap insight.
func Build(snap store.Snapshot, r Range, now time.Time) Report {
	end := startOfDay(now)
	start := end.AddDate(0, 0, -(r.days() - 1))

	report := Report{
		Range:       r,
		PeriodStart: start.Format(headerDateLayout),
		PeriodEnd:   end.Format(headerDateLayout),
	}

	items := make(map[string]store.CosmeticItem, len(snap.Cosmetics))
	for _, c := range snap.Cosmetics {
		items[c.ID] = c
	}

	// Tally resolved references in the window; track per-category recency and
	// the total reference count (resolved or not) for the favorite denominator.
	catCount := make(map[store.Category]int)
	itemCount := make(map[string]int)
	catLastUsed := make(map[store.Category]time.Time)
	allUses := 0

	for _, e := range snap.Usage {
		day, err := store.ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		allUses += len(e.CosmeticIDs)
		for _, id := range e.CosmeticIDs {
			item, ok := items[id]
			if !ok {
				continue
			}
			itemCount[id]++
			catCount[item.Category]++
			if prev, ok := catLastUsed[item.Category]; !ok || day.After(prev) {
				catLastUsed[item.Category] = day
			}
		}
	}

	for _, n := range catCount {
		report.TotalCount += n
	}

	report.Legend = buildLegend(catCount, report.TotalCount)
	report.Favorite = favoriteInsight(snap, itemCount, allUses)
	report.Gap = gapInsight(snap, catLastUsed, now)
	return report
}

// buildLegend produces the category legend sorted descending by percentage,
// ties kept in category declaration order.
func buildLegend(catCount map[store.Category]int, total int) []LegendRow {
	if total == 0 {
		return nil
	}
	var legend []LegendRow
	for _, cat := range store.Categories {
		count := catCount[cat]
		if count == 0 {
			continue
		}
		legend = append(legend, LegendRow{
			Category: cat,
			Percent:  roundPercent(count, total),
		})
	}
	sort.SliceStable(legend, func(i, j int) bool {
		return legend[i].Percent > legend[j].Percent
	})
	return legend
}

// roundPercent is integer percentage rounding, half away from zero.
func roundPercent(count, total int) int {
	return int(math.Round(float64(count) * 100.0 / float64(total)))
}

// favoriteInsight names the single most-used item in the window. Ties are
// broken by collection order: the earliest item in the cosmetics collection
// (the most recently added, since adds prepend) wins. The percentage
// denominator counts every reference in the window, resolved or not, floored
// at 1.
func favoriteInsight(snap store.Snapshot, itemCount map[string]int, allUses int) string {
	if len(itemCount) == 0 {
		return ""
	}

	var top store.CosmeticItem
	topCount := 0
	for _, c := range snap.Cosmetics {
		if n := itemCount[c.ID]; n > topCount {
			top = c
			topCount = n
		}
	}
	if topCount == 0 {
		return ""
	}

	if allUses < 1 {
		allUses = 1
	}
	pct := roundPercent(topCount, allUses)
	return fmt.Sprintf("%s %s is your favorite — %d%% of all uses!",
		top.Name, strings.ToLower(string(top.Category)), pct)
}

// gapInsight reports the category that has gone unused the longest. Only
// computed when any item usage exists lifetime-wide. Per-category recency
// comes from the window tally, falling back to the full history; categories
// never used at all are excluded. Fires when the worst gap is at least seven
// days.
func gapInsight(snap store.Snapshot, catLastUsed map[store.Category]time.Time, now time.Time) string {
	if !hasAnyCosmeticUsage(snap) {
		return ""
	}

	today := startOfDay(now)
	var worstCat store.Category
	worstDays := -1
	for _, cat := range store.Categories {
		last, ok := catLastUsed[cat]
		if !ok {
			last, ok = lifetimeLastUsed(snap, cat)
		}
		if !ok {
			continue
		}
		// Round so DST-shifted local midnights still count whole days.
		days := int(math.Round(today.Sub(startOfDay(last)).Hours() / 24))
		if days < 0 {
			days = 0
		}
		if days > worstDays {
			worstCat = cat
			worstDays = days
		}
	}

	if worstDays < 7 {
		return ""
	}

	catName := strings.ToLower(string(worstCat))
	if title, ok := suggestedLook(snap, worstCat); ok {
		return fmt.Sprintf("You haven't used %s for %d days — try the %q look!", catName, worstDays, title)
	}
	return fmt.Sprintf("You haven't used %s for %d days — try a new look!", catName, worstDays)
}

// suggestedLook picks a look to pair with the neglected category: the first
// look referencing an item of that category, else the first look.
func suggestedLook(snap store.Snapshot, cat store.Category) (string, bool) {
	items := make(map[string]store.CosmeticItem, len(snap.Cosmetics))
	for _, c := range snap.Cosmetics {
		items[c.ID] = c
	}

	for _, l := range snap.Looks {
		for _, id := range l.CosmeticIDs {
			if item, ok := items[id]; ok && item.Category == cat {
				return l.Title, true
			}
		}
	}
	if len(snap.Looks) > 0 {
		return snap.Looks[0].Title, true
	}
	return "", false
}

// lifetimeLastUsed scans the whole usage history for the category's most
// recent day, ignoring the window.
func lifetimeLastUsed(snap store.Snapshot, cat store.Category) (time.Time, bool) {
	items := make(map[string]store.CosmeticItem, len(snap.Cosmetics))
	for _, c := range snap.Cosmetics {
		items[c.ID] = c
	}

	var last time.Time
	var found bool
	for _, e := range snap.Usage {
		day, err := store.ParseDayKey(e.DayKey)
		if err != nil {
			continue
		}
		for _, id := range e.CosmeticIDs {
			if item, ok := items[id]; ok && item.Category == cat {
				if !found || day.After(last) {
					last = day
					found = true
				}
				break
			}
		}
	}
	return last, found
}

func hasAnyCosmeticUsage(snap store.Snapshot) bool {
	for _, e := range snap.Usage {
		if e.HasCosmetics() {
			return true
		}
	}
	return false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
