package domain

import (
	"sort"
	"time"
)

// Interval is a half-open [Start, End) busy range in minutes of day.
// Touching endpoints do not overlap: a booking ending at 09:00 does not
// conflict with a slot starting at 09:00.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect
func (i Interval) Overlaps(other Interval) bool {
	return !(other.End <= i.Start || i.End <= other.Start)
}

// Contains reports whether the given minute falls inside the interval
func (i Interval) Contains(minute int) bool {
	return minute >= i.Start && minute < i.End
}

// BlockedIntervals converts the professional's declared blocks into busy
// intervals. Blocks with malformed start times are skipped. Overlapping
// blocks are not merged; the naive union is intentional.
func BlockedIntervals(e *Employee) []Interval {
	intervals := make([]Interval, 0, len(e.BlockedTimes))
	for _, bt := range e.BlockedTimes {
		start, err := bt.Start.Minutes()
		if err != nil {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: start + bt.DurationMinutes})
	}
	return intervals
}

// BusyIntervals builds the professional's occupied intervals for the given
// date: declared blocks plus same-day non-canceled appointments, sorted
// ascending by start. This is the single canonical construction shared by
// the slot resolver, the professional lookup and the agenda builder.
func BusyIntervals(e *Employee, appointments []*Appointment, date time.Time) []Interval {
	intervals := BlockedIntervals(e)

	for _, appt := range appointments {
		if !appt.Occupies(e.ID, date) {
			continue
		}
		start, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: start + appt.DurationMinutes})
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	return intervals
}

// HasConflict reports whether the candidate interval overlaps any busy
// interval
func HasConflict(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// ConflictAt reports whether any busy interval covers the given minute
func ConflictAt(minute int, busy []Interval) bool {
	for _, b := range busy {
		if b.Contains(minute) {
			return true
		}
	}
	return false
}
