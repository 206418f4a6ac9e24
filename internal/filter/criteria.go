package filter

import (
	"strconv"
	"strings"
	"time"
)

// Criteria is the complete filter state for one record collection, held as a
// single value rather than scattered per-facet fields so that predicate
// composition can be tested independently of any transport. The zero value
// means "nothing active": every predicate is a no-op until its field is set.
//
// Tier, Month and Year carry the raw user input and are coerced at match
// time; a non-numeric tier makes the tier predicate unsatisfiable, which
// filters out every record rather than failing hard.
type Criteria struct {
	Search          string    `form:"search" json:"search"`
	Location        string    `form:"location" json:"location"`
	Country         string    `form:"country" json:"country"`
	Continent       string    `form:"continent" json:"continent"`
	PickedContinent string    `form:"continent_pick" json:"continent_pick"`
	Tier            string    `form:"tier" json:"tier"`
	Dates           Interval  `json:"dates"`
	SelectedDate    time.Time `json:"selected_date"`
	Month           string    `form:"month" json:"month"`
	Year            string    `form:"year" json:"year"`
}

// Reset clears every facet. Resetting an already-clear Criteria is a no-op,
// so filtered output after Reset always equals the initial unfiltered state.
func (c *Criteria) Reset() {
	*c = Criteria{}
}

// IsZero reports whether no facet is set.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// tierValue coerces the raw tier input. ok is false when the field is set
// but not numeric; such input never matches any record.
func (c Criteria) tierValue() (n int, set, ok bool) {
	raw := strings.TrimSpace(c.Tier)
	if raw == "" {
		return 0, false, false
	}
	n, err := strconv.Atoi(raw)
	return n, true, err == nil
}

func (c Criteria) monthValue() (int, bool) {
	return atoiField(c.Month)
}

func (c Criteria) yearValue() (int, bool) {
	return atoiField(c.Year)
}

func atoiField(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
