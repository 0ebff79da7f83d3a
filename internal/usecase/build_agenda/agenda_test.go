package build_agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessojunior/agendamento/internal/domain"
)

func TestGlobalWindow(t *testing.T) {
	employees := []*domain.Employee{
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "09:30", End: "17:15"},
		},
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "08:15", End: "16:00"},
		},
	}

	start, end, ok := globalWindow(employees)
	require.True(t, ok)

	// Min start 08:15 floored to 08:00; max end 17:15 ceiled to 18:00
	assert.Equal(t, 480, start)
	assert.Equal(t, 1080, end)
}

func TestGlobalWindow_WholeHoursUntouched(t *testing.T) {
	employees := []*domain.Employee{
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "09:00", End: "18:00"},
		},
	}

	start, end, ok := globalWindow(employees)
	require.True(t, ok)
	assert.Equal(t, 540, start)
	assert.Equal(t, 1080, end)
}

func TestGlobalWindow_SkipsInactiveAndUnusable(t *testing.T) {
	employees := []*domain.Employee{
		{
			Status:   domain.EmployeeStatusInactive,
			WorkTime: domain.WorkTime{Start: "06:00", End: "22:00"},
		},
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "18:00", End: "08:00"}, // inverted
		},
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "10:00", End: "14:00"},
		},
	}

	start, end, ok := globalWindow(employees)
	require.True(t, ok)
	assert.Equal(t, 600, start)
	assert.Equal(t, 840, end)
}

func TestGlobalWindow_NoUsableWindows(t *testing.T) {
	employees := []*domain.Employee{
		{
			Status:   domain.EmployeeStatusActive,
			WorkTime: domain.WorkTime{Start: "", End: ""},
		},
	}

	_, _, ok := globalWindow(employees)
	assert.False(t, ok)

	_, _, ok = globalWindow(nil)
	assert.False(t, ok)
}

func TestIndexStarts(t *testing.T) {
	emp := &domain.Employee{
		BlockedTimes: []domain.BlockedTime{
			{Start: "12:00", DurationMinutes: 60, Description: "almoço"},
			{Start: "bad", DurationMinutes: 30},
		},
	}
	appointments := []*domain.Appointment{
		{StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
		{StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCanceled},
	}

	idx := indexStarts(emp, appointments)

	require.Len(t, idx.blocks, 1)
	assert.Equal(t, "almoço", idx.blocks[720].Description)

	require.Len(t, idx.appointments, 1)
	assert.Equal(t, 30, idx.appointments[540].DurationMinutes)
}
