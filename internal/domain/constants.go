package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Schedule constants
const (
	// AgendaStepMinutes is the fixed cadence of the manager calendar.
	// Blocks and appointments are only detected when the step counter
	// lands exactly on their start time.
	AgendaStepMinutes = 15

	// MaxScheduleDays caps how many days the date generator produces
	MaxScheduleDays = 60

	// DisplayUTCOffsetHours is the fixed timezone offset used for all
	// customer-facing dates. The product targets a single market, so the
	// host timezone is never used.
	DisplayUTCOffsetHours = -3

	// MinutesPerHour is used when rounding the calendar's global window
	// outward to whole hours
	MinutesPerHour = 60
)
