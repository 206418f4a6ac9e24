package filter

import (
	"sort"
	"strconv"
)

// YearMargin widens the year facet beyond the catalog's actual span so the
// year selector offers adjacent years on both sides. Deliberately loose;
// tune here rather than inline.
const YearMargin = 5

// Facets are the distinct filterable values extracted from a record
// catalog, recomputed only when the catalog changes.
type Facets struct {
	Countries  []string `json:"countries"`
	Continents []string `json:"continents"`
	Tiers      []int    `json:"tiers"`
	Years      []string `json:"years"`
}

// ExtractFacets derives the dropdown option sets from the catalog. Slices
// are deduplicated and sorted ascending; an empty catalog yields empty
// facets. Facets whose accessor is nil stay empty.
func ExtractFacets[T any](recs []T, a Accessors[T]) Facets {
	var f Facets
	if a.Country != nil {
		f.Countries = distinctStrings(recs, a.Country)
	}
	if a.Continent != nil {
		f.Continents = distinctStrings(recs, a.Continent)
	}
	if a.Tier != nil {
		seen := make(map[int]struct{})
		for _, rec := range recs {
			seen[a.Tier(rec)] = struct{}{}
		}
		f.Tiers = make([]int, 0, len(seen))
		for t := range seen {
			f.Tiers = append(f.Tiers, t)
		}
		sort.Ints(f.Tiers)
	}
	if a.Span != nil {
		f.Years = yearFacet(recs, a.Span)
	}
	return f
}

func distinctStrings[T any](recs []T, get func(T) string) []string {
	seen := make(map[string]struct{})
	for _, rec := range recs {
		seen[get(rec)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func yearFacet[T any](recs []T, span func(T) Interval) []string {
	seen := make(map[int]struct{})
	for _, rec := range recs {
		s := span(rec)
		for y := s.Start.Year() - YearMargin; y <= s.End.Year()+YearMargin; y++ {
			seen[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}
