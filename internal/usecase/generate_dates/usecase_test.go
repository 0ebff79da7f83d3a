package generate_dates

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_FiveContiguousDays(t *testing.T) {
	uc := NewUseCase()

	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Days:      5,
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 5)

	want := []string{"2025-05-12", "2025-05-13", "2025-05-14", "2025-05-15", "2025-05-16"}
	for i, entry := range resp.Dates {
		assert.Equal(t, want[i], entry.Date)
	}
}

func TestExecute_PortugueseLabels(t *testing.T) {
	uc := NewUseCase()

	// 2025-05-12 is a Monday
	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Days:      2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 2)

	assert.Equal(t, "Seg 12 Mai 2025", resp.Dates[0].Formatted)
	assert.Equal(t, "Ter 13 Mai 2025", resp.Dates[1].Formatted)
}

func TestExecute_CapsAtSixtyDays(t *testing.T) {
	uc := NewUseCase()

	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Days:      200,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Dates, 60)
}

func TestExecute_CrossesMonthBoundary(t *testing.T) {
	uc := NewUseCase()

	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC),
		Days:      4,
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 4)

	assert.Equal(t, "2025-05-31", resp.Dates[1].Date)
	assert.Equal(t, "2025-06-01", resp.Dates[2].Date)
}

func TestExecute_StartDateTimezoneDoesNotShiftDay(t *testing.T) {
	uc := NewUseCase()

	// 23:30 UTC on the 12th; anchored at noon before iterating, the first
	// generated day must still be the 12th in the UTC-3 display zone
	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 23, 30, 0, 0, time.UTC),
		Days:      1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, "2025-05-12", resp.Dates[0].Date)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase()

	_, err := uc.Execute(&Request{Days: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Days:      -1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExecute_ZeroDays(t *testing.T) {
	uc := NewUseCase()

	resp, err := uc.Execute(&Request{
		StartDate: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Days:      0,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}
