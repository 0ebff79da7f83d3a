package types

import (
	"fmt"
	"time"
)

// TimeString represents a clock time in "HH:MM" format.
// All schedule arithmetic in the service works on whole minutes of day.
type TimeString string

// TimeStringFormat is the layout used for parsing and formatting
const TimeStringFormat = "15:04"

// NewTimeString creates a TimeString from a time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeStringFormat))
}

// NewTimeStringFromString creates a validated TimeString from a raw string.
// Returns an error when the value is not a valid "HH:MM" clock time.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(TimeStringFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// FromMinutes converts a minute-of-day value to a zero-padded TimeString.
// Values are not clamped to 24h: the caller must keep minutes in [0, 1440)
// for sane output.
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// Minutes parses the TimeString into a minute-of-day value
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time string %q: %w", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Valid reports whether the value is a well-formed "HH:MM" clock time
func (t TimeString) Valid() bool {
	_, err := t.Minutes()
	return err == nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
// Malformed values compare as not-after.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

func (t TimeString) String() string {
	return string(t)
}
