package resolve_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessojunior/agendamento/internal/domain"
)

func TestCandidateStarts(t *testing.T) {
	tests := []struct {
		name      string
		workStart int
		workEnd   int
		duration  int
		want      []int
	}{
		{
			name:      "even division",
			workStart: 540, workEnd: 660, duration: 30,
			want: []int{540, 570, 600, 630},
		},
		{
			name:      "no partial trailing slot",
			workStart: 540, workEnd: 650, duration: 30,
			// 630+30 > 650, so 630 is not a candidate
			want: []int{540, 570, 600},
		},
		{
			name:      "duration longer than window",
			workStart: 540, workEnd: 570, duration: 60,
			want: nil,
		},
		{
			name:      "duration exactly fills window",
			workStart: 540, workEnd: 600, duration: 60,
			want: []int{540},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, candidateStarts(tt.workStart, tt.workEnd, tt.duration))
		})
	}
}

func TestEligibleProfessionals(t *testing.T) {
	employees := []*domain.Employee{
		{
			ID:     "emp-1",
			Status: domain.EmployeeStatusActive,
			Services: []domain.EmployeeService{
				{ServiceID: "svc-1", DurationMinutes: 30},
			},
		},
		{
			ID:     "emp-2",
			Status: domain.EmployeeStatusInactive,
			Services: []domain.EmployeeService{
				{ServiceID: "svc-1", DurationMinutes: 30},
			},
		},
		{
			ID:     "emp-3",
			Status: domain.EmployeeStatusActive,
			Services: []domain.EmployeeService{
				{ServiceID: "svc-2", DurationMinutes: 45},
			},
		},
		{
			ID:     "emp-4",
			Status: domain.EmployeeStatusActive,
			Services: []domain.EmployeeService{
				{ServiceID: "svc-1", DurationMinutes: 0}, // unusable duration
			},
		},
	}

	eligible := eligibleProfessionals(employees, "svc-1")

	require.Len(t, eligible, 1)
	assert.Equal(t, "emp-1", eligible[0].employee.ID)
	assert.Equal(t, 30, eligible[0].serviceDuration)
}

func TestSlotUniverse_MixedDurations(t *testing.T) {
	professionals := []eligibleProfessional{
		{
			employee: &domain.Employee{
				ID:       "emp-1",
				WorkTime: domain.WorkTime{Start: "09:00", End: "11:00"},
			},
			serviceDuration: 60,
		},
		{
			employee: &domain.Employee{
				ID:       "emp-2",
				WorkTime: domain.WorkTime{Start: "09:00", End: "10:30"},
			},
			serviceDuration: 45,
		},
	}

	universe := slotUniverse(professionals)

	// emp-1 contributes 09:00 and 10:00; emp-2 contributes 09:00 and 09:45.
	// The union is sorted and deduplicated.
	assert.Equal(t, []int{540, 585, 600}, universe)
}

func TestSlotUniverse_SkipsUnusableWindows(t *testing.T) {
	professionals := []eligibleProfessional{
		{
			employee: &domain.Employee{
				ID:       "emp-1",
				WorkTime: domain.WorkTime{Start: "18:00", End: "08:00"},
			},
			serviceDuration: 30,
		},
	}

	assert.Empty(t, slotUniverse(professionals))
}
