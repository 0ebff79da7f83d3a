package types

import "time"

// DateInRange reports whether date falls within [start, end], inclusive on
// both ends. All three values are normalized to midnight before comparing,
// so time-of-day components are ignored.
func DateInRange(date, start, end time.Time) bool {
	d := truncateToDay(date)
	s := truncateToDay(start)
	e := truncateToDay(end)
	return !d.Before(s) && !d.After(e)
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
