package news

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Normalize maps the heterogeneous upstream items into the flat display
// shape. Date parsing failures leave a zero Date rather than dropping the
// item, so nothing published upstream disappears from the list.
func Normalize(raw []RawItem, kind Kind) []Item {
	var items []Item

	for _, r := range raw {
		item := Item{
			Title:       r.Title,
			Link:        r.ID,
			Description: r.Description,
			Image:       r.Image,
		}

		if kind == KindEvents {
			item.Facet = r.Location
			if date, err := ParseEventDate(r.EventDate); err == nil {
				item.Date = date
			}
		} else {
			item.Facet = r.School
			if date, err := time.Parse(time.RFC3339, r.Effective); err == nil {
				item.Date = date
			}
		}

		items = append(items, item)
	}

	return items
}

// Facets derives the sorted-unique filter values (schools or locations)
// from already-normalized items. Empty facets are skipped.
func Facets(items []Item) []string {
	seen := make(map[string]bool)
	var facets []string

	for _, item := range items {
		if item.Facet == "" || seen[item.Facet] {
			continue
		}
		seen[item.Facet] = true
		facets = append(facets, item.Facet)
	}

	sort.Strings(facets)
	return facets
}

// FilterByFacet keeps only the items matching the given facet value. An
// empty facet returns the input unchanged.
func FilterByFacet(items []Item, facet string) []Item {
	if facet == "" {
		return items
	}

	var filtered []Item
	for _, item := range items {
		if item.Facet == facet {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByDate orders items by date after normalization. The upstream
// events endpoint cannot sort (its dates are free text), so ordering is
// always applied here.
func SortByDate(items []Item, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].Date.After(items[j].Date)
	})
}

// ParseEventDate parses the fixed German event date line, e.g.
// "Montag, 1.9.2025, 18:00–20:00 Uhr". The weekday is ignored and only
// the start time of the range is kept.
func ParseEventDate(text string) (time.Time, error) {
	parts := strings.Split(text, ", ")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("unrecognized event date format: %q", text)
	}

	datePart := strings.TrimSpace(parts[1])

	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		loc = time.Local
	}

	if len(parts) < 3 {
		return time.ParseInLocation("2.1.2006", datePart, loc)
	}

	timePart := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[2]), "Uhr"))
	// The range separator is an en dash, but be lenient about plain dashes
	for _, sep := range []string{"–", "-"} {
		if i := strings.Index(timePart, sep); i >= 0 {
			timePart = timePart[:i]
			break
		}
	}
	timePart = strings.TrimSpace(timePart)

	return time.ParseInLocation("2.1.2006 15:04", datePart+" "+timePart, loc)
}
