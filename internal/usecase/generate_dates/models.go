package generate_dates

import "time"

// Request asks for a sequence of calendar days starting at StartDate.
// Days is capped at the schedule limit (60).
type Request struct {
	StartDate time.Time
	Days      int
}

// DateEntry is one selectable day: the ISO date plus a customer-facing
// label ("Seg 12 Mai 2025")
type DateEntry struct {
	Date      string
	Formatted string
}

// Response is the ordered, contiguous day sequence
type Response struct {
	Dates []DateEntry
}
