package filter

import (
	"strings"
	"time"
)

// Accessors maps an arbitrary record type onto the facets the engine can
// filter on. One accessor set per entity keeps tournament, club and court
// filtering on the same predicate logic instead of three diverging copies.
// A nil accessor disables the corresponding predicates for that entity.
type Accessors[T any] struct {
	Name      func(T) string
	Location  func(T) string
	Country   func(T) string
	Continent func(T) string
	Tier      func(T) int
	Span      func(T) Interval
}

// Matches evaluates every applicable predicate against the record and ANDs
// the results. An unset facet always passes; a facet whose accessor is nil
// is skipped entirely.
func (a Accessors[T]) Matches(rec T, c Criteria) bool {
	if a.Name != nil && !containsFold(a.Name(rec), c.Search) {
		return false
	}
	if a.Location != nil && !containsFold(a.Location(rec), c.Location) {
		return false
	}
	if a.Country != nil && c.Country != "" && a.Country(rec) != c.Country {
		return false
	}
	if a.Continent != nil {
		// Dropdown and image-picker selections are independent facets and
		// are ANDed: if both are set and disagree, nothing matches.
		if c.Continent != "" && a.Continent(rec) != c.Continent {
			return false
		}
		if c.PickedContinent != "" && a.Continent(rec) != c.PickedContinent {
			return false
		}
	}
	if a.Tier != nil {
		if n, set, ok := c.tierValue(); set && (!ok || a.Tier(rec) != n) {
			return false
		}
	}
	if a.Span != nil {
		span := a.Span(rec)
		if !c.Dates.IsZero() && !span.Overlaps(c.Dates) {
			return false
		}
		if !c.SelectedDate.IsZero() && !span.Contains(c.SelectedDate) {
			return false
		}
		if !matchesPeriod(span, c) {
			return false
		}
	}
	return true
}

// Apply returns the records passing Matches, preserving input order.
func (a Accessors[T]) Apply(recs []T, c Criteria) []T {
	filtered := make([]T, 0, len(recs))
	for _, rec := range recs {
		if a.Matches(rec, c) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// matchesPeriod tests month/year containment with closed-form interval
// arithmetic against the span boundaries; the span is never expanded into
// individual days.
func matchesPeriod(span Interval, c Criteria) bool {
	month, hasMonth := c.monthValue()
	year, hasYear := c.yearValue()

	switch {
	case hasMonth && hasYear:
		// The span contains a day of the period iff it overlaps the
		// period's calendar month.
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, span.Start.Location())
		last := first.AddDate(0, 1, -1)
		return span.Overlaps(Interval{Start: first, End: last})
	case hasYear:
		return span.Start.Year() <= year && year <= span.End.Year()
	case hasMonth:
		return spanTouchesMonth(span, time.Month(month))
	default:
		return true
	}
}

// spanTouchesMonth reports whether any day of the span falls in the given
// calendar month of any year.
func spanTouchesMonth(span Interval, m time.Month) bool {
	switch span.End.Year() - span.Start.Year() {
	case 0:
		return span.Start.Month() <= m && m <= span.End.Month()
	case 1:
		return m >= span.Start.Month() || m <= span.End.Month()
	default:
		// Two or more year boundaries: every month is covered.
		return true
	}
}

// containsFold is a case-insensitive substring test; an empty needle
// matches everything.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
