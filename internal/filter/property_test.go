package filter

import (
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var catalogEpoch = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func genEvent() gopter.Gen {
	return gopter.CombineGens(
		gen.AlphaString(),
		gen.OneConstOf("USA", "Germany", "Japan", "Brazil", "New Zealand"),
		gen.OneConstOf("North America", "Europe", "Asia", "South America", "Oceania"),
		gen.IntRange(1, 4),
		gen.IntRange(0, 700),
		gen.IntRange(0, 14),
	).Map(func(vals []interface{}) event {
		start := catalogEpoch.AddDate(0, 0, vals[4].(int))
		return event{
			name:      vals[0].(string),
			location:  vals[0].(string),
			country:   vals[1].(string),
			continent: vals[2].(string),
			tier:      vals[3].(int),
			start:     start,
			end:       start.AddDate(0, 0, vals[5].(int)),
		}
	})
}

func genEvents() gopter.Gen {
	return gen.SliceOf(genEvent())
}

func TestFilterProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("reset restores the unfiltered catalog", prop.ForAll(
		func(events []event, country string, tier int) bool {
			c := Criteria{Country: country, Tier: strconv.Itoa(tier)}
			_ = eventFields.Apply(events, c)
			c.Reset()
			filtered := eventFields.Apply(events, c)
			if len(filtered) != len(events) {
				return false
			}
			for i := range events {
				if filtered[i] != events[i] {
					return false
				}
			}
			return true
		},
		genEvents(),
		gen.OneConstOf("USA", "Germany", "Japan"),
		gen.IntRange(1, 4),
	))

	properties.Property("filtered output is an ordered subset", prop.ForAll(
		func(events []event, country string) bool {
			filtered := eventFields.Apply(events, Criteria{Country: country})
			i := 0
			for _, e := range events {
				if i < len(filtered) && filtered[i] == e {
					i++
				}
			}
			return i == len(filtered)
		},
		genEvents(),
		gen.OneConstOf("USA", "Germany", "Japan", "Brazil"),
	))

	properties.Property("adding a facet never grows the result", prop.ForAll(
		func(events []event, country, continent string) bool {
			loose := eventFields.Apply(events, Criteria{Country: country})
			tight := eventFields.Apply(events, Criteria{Country: country, Continent: continent})
			return len(tight) <= len(loose)
		},
		genEvents(),
		gen.OneConstOf("USA", "Germany", "Japan"),
		gen.OneConstOf("North America", "Europe", "Asia"),
	))

	properties.Property("every match satisfies the country facet", prop.ForAll(
		func(events []event, country string) bool {
			for _, e := range eventFields.Apply(events, Criteria{Country: country}) {
				if e.country != country {
					return false
				}
			}
			return true
		},
		genEvents(),
		gen.OneConstOf("USA", "Germany", "Japan", "Brazil", "New Zealand"),
	))

	properties.TestingRun(t)
}

func TestIntervalProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	genInterval := gopter.CombineGens(
		gen.IntRange(0, 700),
		gen.IntRange(0, 30),
	).Map(func(vals []interface{}) Interval {
		start := catalogEpoch.AddDate(0, 0, vals[0].(int))
		return NewInterval(start, start.AddDate(0, 0, vals[1].(int)))
	})

	properties.Property("overlap is symmetric", prop.ForAll(
		func(a, b Interval) bool {
			return a.Overlaps(b) == b.Overlaps(a)
		},
		genInterval,
		genInterval,
	))

	properties.Property("an interval overlaps itself", prop.ForAll(
		func(a Interval) bool {
			return a.Overlaps(a) && a.Contains(a.Start) && a.Contains(a.End)
		},
		genInterval,
	))

	properties.TestingRun(t)
}

func TestDateRangeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("thumb moves never invert the selection", prop.ForAll(
		func(positions []float64) bool {
			r := NewDateRange([]Interval{
				NewInterval(catalogEpoch, catalogEpoch.AddDate(1, 0, 0)),
			})
			for i, pos := range positions {
				if i%2 == 0 {
					r.SetStartFromPosition(pos)
				} else {
					r.SetEndFromPosition(pos)
				}
				if r.Selection.Start.After(r.Selection.End) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0, 100)),
	))

	properties.Property("week shifts stay inside the catalog bounds", prop.ForAll(
		func(dirs []bool) bool {
			r := NewDateRange([]Interval{
				NewInterval(catalogEpoch, catalogEpoch.AddDate(0, 2, 0)),
			})
			r.Selection = NewInterval(catalogEpoch.AddDate(0, 0, 10), catalogEpoch.AddDate(0, 0, 20))
			for _, forward := range dirs {
				d := Backward
				if forward {
					d = Forward
				}
				r.ShiftWeek(d)
				if r.Selection.Start.Before(r.Min) || r.Selection.End.After(r.Max) ||
					r.Selection.Start.After(r.Selection.End) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("thumb positions stay on the rail", prop.ForAll(
		func(dayOffset int) bool {
			r := NewDateRange([]Interval{
				NewInterval(catalogEpoch, catalogEpoch.AddDate(1, 0, 0)),
			})
			pos := r.ThumbPosition(catalogEpoch.AddDate(0, 0, dayOffset))
			return pos >= 0 && pos <= 100
		},
		gen.IntRange(-1000, 2000),
	))

	properties.TestingRun(t)
}
