package filter

import (
	"fmt"
	"time"
)

// Chip is one human-readable active-filter marker.
type Chip struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

const chipDateFormat = "Jan 2, 2006"

// Active reports whether any facet differs from its no-op default. The date
// range counts as active only when the selection is narrower than the full
// catalog span.
func Active(c Criteria, r DateRange) bool {
	base := c
	base.Dates = Interval{}
	if !base.IsZero() {
		return true
	}
	return narrowedDates(c, r)
}

// narrowedDates reports whether the criteria's date interval is set and
// tighter than the full catalog span.
func narrowedDates(c Criteria, r DateRange) bool {
	if c.Dates.IsZero() || r.Min.IsZero() {
		return false
	}
	return !c.Dates.Start.Equal(r.Min) || !c.Dates.End.Equal(r.Max)
}

// Chips derives one chip per active facet for at-a-glance confirmation.
// Month and year collapse into a single period chip when both are set.
// Inactive facets produce nothing; no filters means no chips.
func Chips(c Criteria, r DateRange) []Chip {
	var chips []Chip
	add := func(label, value string) {
		chips = append(chips, Chip{Label: label, Value: value})
	}

	if c.Search != "" {
		add("Name", c.Search)
	}
	if c.Location != "" {
		add("Location", c.Location)
	}
	if c.Country != "" {
		add("Country", c.Country)
	}
	if c.Continent != "" {
		add("Continent", c.Continent)
	}
	if c.PickedContinent != "" {
		add("Continent", c.PickedContinent)
	}
	if c.Tier != "" {
		add("Tier", fmt.Sprintf("Tier %s", c.Tier))
	}

	month, hasMonth := c.monthValue()
	year, hasYear := c.yearValue()
	switch {
	case hasMonth && hasYear:
		add("Period", fmt.Sprintf("%s %d", time.Month(month), year))
	case hasMonth:
		add("Month", time.Month(month).String())
	case hasYear:
		add("Year", fmt.Sprintf("%d", year))
	}

	if !c.SelectedDate.IsZero() {
		add("Date", c.SelectedDate.Format(chipDateFormat))
	}
	if narrowedDates(c, r) {
		add("Dates", fmt.Sprintf("%s to %s",
			c.Dates.Start.Format(chipDateFormat),
			c.Dates.End.Format(chipDateFormat)))
	}
	return chips
}
