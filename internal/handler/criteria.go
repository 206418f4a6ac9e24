package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtside/pickleball-api/internal/filter"
)

const queryDateLayout = "2006-01-02"

// ParseCriteria reads the catalog filter query parameters off the request.
// Date parameters that fail to parse are treated as unset so a bad link
// degrades to a wider result set instead of an error.
func ParseCriteria(c *gin.Context) filter.Criteria {
	crit := filter.Criteria{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		Country:         c.Query("country"),
		Continent:       c.Query("continent"),
		PickedContinent: c.Query("continent_pick"),
		Tier:            c.Query("tier"),
		Month:           c.Query("month"),
		Year:            c.Query("year"),
	}

	if t, ok := parseQueryDate(c.Query("start_date")); ok {
		crit.Dates.Start = t
	}
	if t, ok := parseQueryDate(c.Query("end_date")); ok {
		crit.Dates.End = t
	}
	if t, ok := parseQueryDate(c.Query("date")); ok {
		crit.SelectedDate = t
	}
	return crit
}

func parseQueryDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(queryDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
