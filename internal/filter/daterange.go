package filter

import "time"

// Interval is an inclusive calendar-date interval.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsZero reports whether the interval is unset.
func (iv Interval) IsZero() bool {
	return iv.Start.IsZero() && iv.End.IsZero()
}

// Overlaps reports whether two inclusive intervals share at least one day.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.End.Before(other.Start) && !iv.Start.After(other.End)
}

// Contains reports whether t falls within the interval, boundaries included.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// Days returns the interval length in whole days, boundaries included.
func (iv Interval) Days() int {
	return int(iv.End.Sub(iv.Start).Hours()/24) + 1
}

// Direction of a coarse date-range shift.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Preset is a quick-select date range.
type Preset int

const (
	PresetNext30Days Preset = iota
	PresetNext3Months
	PresetAllDates
)

const (
	shiftStep = 7 * 24 * time.Hour
	// thumbScale is the normalized slider width: thumb positions run 0..100.
	thumbScale = 100.0
)

// DateRange tracks the full span of a record catalog and the currently
// selected sub-interval. Min and Max are recomputed only when the catalog
// changes; Selection moves with user input and always satisfies
// Selection.Start <= Selection.End.
type DateRange struct {
	Min       time.Time `json:"min"`
	Max       time.Time `json:"max"`
	Selection Interval  `json:"selection"`
}

// NewDateRange derives the catalog bounds from the given record spans and
// selects the full range. An empty catalog yields a zero DateRange.
func NewDateRange(spans []Interval) DateRange {
	if len(spans) == 0 {
		return DateRange{}
	}
	min, max := spans[0].Start, spans[0].End
	for _, s := range spans[1:] {
		if s.Start.Before(min) {
			min = s.Start
		}
		if s.End.After(max) {
			max = s.End
		}
	}
	return DateRange{Min: min, Max: max, Selection: Interval{Start: min, End: max}}
}

// Reset returns the selection to the full [Min, Max] span.
func (r *DateRange) Reset() {
	r.Selection = Interval{Start: r.Min, End: r.Max}
}

// IsFullSpan reports whether the selection covers the whole catalog span.
func (r *DateRange) IsFullSpan() bool {
	return r.Selection.Start.Equal(r.Min) && r.Selection.End.Equal(r.Max)
}

// ShiftWeek moves both selection boundaries one week in the given direction.
// The shift shrinks at the catalog bounds so the selection never leaves
// [Min, Max] and never inverts.
func (r *DateRange) ShiftWeek(d Direction) {
	if r.Min.IsZero() || r.Max.IsZero() {
		return
	}
	delta := time.Duration(shiftStep)
	if d == Backward {
		delta = -delta
	}
	start := r.Selection.Start.Add(delta)
	end := r.Selection.End.Add(delta)
	if start.Before(r.Min) {
		start = r.Min
	}
	if end.After(r.Max) {
		end = r.Max
	}
	if start.After(end) {
		return
	}
	r.Selection = Interval{Start: start, End: end}
}

// ThumbPosition maps a date onto the normalized 0..100 slider scale.
func (r *DateRange) ThumbPosition(t time.Time) float64 {
	total := r.Max.Sub(r.Min)
	if total <= 0 {
		return 0
	}
	pos := float64(t.Sub(r.Min)) / float64(total) * thumbScale
	if pos < 0 {
		return 0
	}
	if pos > thumbScale {
		return thumbScale
	}
	return pos
}

// SetStartFromPosition moves the start thumb to the given normalized
// position. Dragging the start past the end thumb is rejected; the call
// reports whether the selection changed.
func (r *DateRange) SetStartFromPosition(pos float64) bool {
	t := r.dateAtPosition(pos)
	if t.IsZero() || t.After(r.Selection.End) {
		return false
	}
	r.Selection.Start = t
	return true
}

// SetEndFromPosition moves the end thumb to the given normalized position,
// rejecting positions before the start thumb.
func (r *DateRange) SetEndFromPosition(pos float64) bool {
	t := r.dateAtPosition(pos)
	if t.IsZero() || t.Before(r.Selection.Start) {
		return false
	}
	r.Selection.End = t
	return true
}

// SetStart applies a direct start-date edit, rejecting values that would
// invert the selection.
func (r *DateRange) SetStart(t time.Time) bool {
	if t.After(r.Selection.End) {
		return false
	}
	r.Selection.Start = t
	return true
}

// SetEnd applies a direct end-date edit, rejecting values before the start.
func (r *DateRange) SetEnd(t time.Time) bool {
	if t.Before(r.Selection.Start) {
		return false
	}
	r.Selection.End = t
	return true
}

// ApplyPreset replaces the selection with a quick-select range. The relative
// presets start from today and are not clamped to Max, so a selection may
// extend past the newest event; PresetAllDates restores [Min, Max].
func (r *DateRange) ApplyPreset(p Preset, today time.Time) {
	today = truncateToDay(today)
	switch p {
	case PresetNext30Days:
		r.Selection = Interval{Start: today, End: today.AddDate(0, 0, 30)}
	case PresetNext3Months:
		r.Selection = Interval{Start: today, End: today.AddDate(0, 3, 0)}
	case PresetAllDates:
		r.Reset()
	}
}

// MonthMarks returns the first day of every month touched by [Min, Max],
// used to render tick marks along the slider rail.
func (r *DateRange) MonthMarks() []time.Time {
	if r.Min.IsZero() || r.Max.IsZero() {
		return nil
	}
	var marks []time.Time
	m := time.Date(r.Min.Year(), r.Min.Month(), 1, 0, 0, 0, 0, r.Min.Location())
	for !m.After(r.Max) {
		marks = append(marks, m)
		m = m.AddDate(0, 1, 0)
	}
	return marks
}

func (r *DateRange) dateAtPosition(pos float64) time.Time {
	if r.Min.IsZero() || r.Max.IsZero() || pos < 0 || pos > thumbScale {
		return time.Time{}
	}
	offset := time.Duration(float64(r.Max.Sub(r.Min)) * pos / thumbScale)
	return truncateToDay(r.Min.Add(offset))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
