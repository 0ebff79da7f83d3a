package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "disjoint", a: Interval{540, 570}, b: Interval{600, 630}, want: false},
		{name: "touching endpoints do not overlap", a: Interval{540, 570}, b: Interval{570, 600}, want: false},
		{name: "partial overlap", a: Interval{540, 580}, b: Interval{570, 600}, want: true},
		{name: "contained", a: Interval{540, 660}, b: Interval{570, 600}, want: true},
		{name: "identical", a: Interval{540, 570}, b: Interval{540, 570}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	i := Interval{Start: 540, End: 570}

	assert.True(t, i.Contains(540))
	assert.True(t, i.Contains(569))
	assert.False(t, i.Contains(570)) // half-open end
	assert.False(t, i.Contains(539))
}

func TestBusyIntervals(t *testing.T) {
	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	emp := &Employee{
		ID: "emp-1",
		BlockedTimes: []BlockedTime{
			{Start: "12:00", DurationMinutes: 60, Description: "almoço"},
			{Start: "bad", DurationMinutes: 30}, // skipped
		},
	}

	appointments := []*Appointment{
		{EmployeeID: "emp-1", Date: day, StartTime: "09:00", DurationMinutes: 30, Status: StatusConfirmed},
		{EmployeeID: "emp-1", Date: day, StartTime: "10:00", DurationMinutes: 30, Status: StatusCanceled},
		{EmployeeID: "emp-2", Date: day, StartTime: "09:00", DurationMinutes: 30, Status: StatusConfirmed},
		{EmployeeID: "emp-1", Date: day.AddDate(0, 0, 1), StartTime: "09:00", DurationMinutes: 30, Status: StatusConfirmed},
	}

	busy := BusyIntervals(emp, appointments, day)

	require.Len(t, busy, 2)
	// Sorted ascending: the 09:00 appointment before the 12:00 block
	assert.Equal(t, Interval{Start: 540, End: 570}, busy[0])
	assert.Equal(t, Interval{Start: 720, End: 780}, busy[1])
}

func TestHasConflict(t *testing.T) {
	busy := []Interval{{540, 570}, {720, 780}}

	assert.True(t, HasConflict(Interval{550, 580}, busy))
	assert.False(t, HasConflict(Interval{570, 600}, busy))
	assert.False(t, HasConflict(Interval{600, 660}, busy))
}

func TestConflictAt(t *testing.T) {
	busy := []Interval{{540, 570}}

	assert.True(t, ConflictAt(540, busy))
	assert.True(t, ConflictAt(555, busy))
	assert.False(t, ConflictAt(570, busy))
	assert.False(t, ConflictAt(500, busy))
}
