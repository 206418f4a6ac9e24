package filter

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractFacetsDeduplicatesAndSorts(t *testing.T) {
	events := []event{
		{country: "USA", continent: "North America", tier: 2,
			start: day(2026, time.June, 1), end: day(2026, time.June, 2)},
		{country: "Germany", continent: "Europe", tier: 1,
			start: day(2026, time.July, 1), end: day(2026, time.July, 2)},
		{country: "USA", continent: "North America", tier: 1,
			start: day(2026, time.August, 1), end: day(2026, time.August, 2)},
	}

	f := ExtractFacets(events, eventFields)
	assert.Equal(t, []string{"Germany", "USA"}, f.Countries)
	assert.Equal(t, []string{"Europe", "North America"}, f.Continents)
	assert.Equal(t, []int{1, 2}, f.Tiers)
}

func TestYearFacetMargin(t *testing.T) {
	events := []event{
		{start: day(2026, time.June, 1), end: day(2026, time.June, 2)},
	}

	f := ExtractFacets(events, eventFields)
	assert.Len(t, f.Years, 2*YearMargin+1)
	assert.Equal(t, strconv.Itoa(2026-YearMargin), f.Years[0])
	assert.Equal(t, strconv.Itoa(2026+YearMargin), f.Years[len(f.Years)-1])
}

func TestYearFacetSpanningYears(t *testing.T) {
	events := []event{
		{start: day(2026, time.December, 28), end: day(2027, time.January, 3)},
	}

	f := ExtractFacets(events, eventFields)
	assert.Equal(t, strconv.Itoa(2026-YearMargin), f.Years[0])
	assert.Equal(t, strconv.Itoa(2027+YearMargin), f.Years[len(f.Years)-1])
}

func TestExtractFacetsEmptyCatalog(t *testing.T) {
	f := ExtractFacets(nil, eventFields)
	assert.Empty(t, f.Countries)
	assert.Empty(t, f.Continents)
	assert.Empty(t, f.Tiers)
	assert.Empty(t, f.Years)
}

func TestExtractFacetsNilAccessors(t *testing.T) {
	fields := Accessors[event]{
		Country: func(e event) string { return e.country },
	}
	events := []event{{country: "USA", tier: 3}}

	f := ExtractFacets(events, fields)
	assert.Equal(t, []string{"USA"}, f.Countries)
	assert.Empty(t, f.Tiers)
	assert.Empty(t, f.Years)
}
