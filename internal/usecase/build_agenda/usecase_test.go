package build_agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessojunior/agendamento/internal/domain"
)

type fakeRecords struct {
	business     *domain.Business
	businessErr  error
	employees    []*domain.Employee
	employeesErr error
	appointments []*domain.Appointment

	customers map[string]*domain.Customer
	services  map[string]*domain.Service

	customerLookups int
	serviceLookups  int
}

func (f *fakeRecords) GetBusinessBySlug(_ context.Context, _ string) (*domain.Business, error) {
	return f.business, f.businessErr
}

func (f *fakeRecords) ListEmployees(_ context.Context, _ domain.EmployeeFilter) ([]*domain.Employee, error) {
	return f.employees, f.employeesErr
}

func (f *fakeRecords) ListAppointments(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeRecords) GetCustomerByID(_ context.Context, id string) (*domain.Customer, error) {
	f.customerLookups++
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (f *fakeRecords) GetServiceByID(_ context.Context, id string) (*domain.Service, error) {
	f.serviceLookups++
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, domain.ErrServiceNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDay = time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)

func eventTypes(events []domain.AgendaEvent) []domain.AgendaEventType {
	out := make([]domain.AgendaEventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func TestExecute_Timeline(t *testing.T) {
	target := &domain.Employee{
		ID:       "emp-1",
		Name:     "Ana",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:00", End: "11:00"},
		BlockedTimes: []domain.BlockedTime{
			{Start: "10:00", DurationMinutes: 30, Description: "reunião"},
		},
	}
	// A colleague with a later window stretches the shared axis to 12:00
	colleague := &domain.Employee{
		ID:       "emp-2",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:00", End: "12:00"},
	}

	records := &fakeRecords{
		business:  &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{target, colleague},
		appointments: []*domain.Appointment{
			{
				EmployeeID:      "emp-1",
				ServiceID:       "svc-1",
				CustomerID:      "cust-1",
				Date:            testDay,
				StartTime:       "09:00",
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		},
		customers: map[string]*domain.Customer{"cust-1": {ID: "cust-1", Name: "Carlos"}},
		services:  map[string]*domain.Service{"svc-1": {ID: "svc-1", Name: "Corte"}},
	}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)

	// Axis 09:00-12:00 at 15-minute cadence: 12 events
	require.Len(t, resp.Events, 12)

	want := []domain.AgendaEventType{
		domain.EventAppointmentTime, // 09:00
		domain.EventEmpty,           // 09:15 continuation
		domain.EventFreeTime,        // 09:30
		domain.EventFreeTime,        // 09:45
		domain.EventBlockedTime,     // 10:00
		domain.EventEmpty,           // 10:15 continuation
		domain.EventFreeTime,        // 10:30
		domain.EventFreeTime,        // 10:45
		domain.EventNotWorkTime,     // 11:00 outside own window
		domain.EventNotWorkTime,     // 11:15
		domain.EventNotWorkTime,     // 11:30
		domain.EventNotWorkTime,     // 11:45
	}
	assert.Equal(t, want, eventTypes(resp.Events))

	assert.Equal(t, "09:00", resp.Events[0].Time.String())
	assert.Equal(t, "Carlos", resp.Events[0].CustomerName)
	assert.Equal(t, "Corte", resp.Events[0].ServiceName)
	assert.Equal(t, 30, resp.Events[0].DurationMinutes)

	assert.Equal(t, "reunião", resp.Events[4].Description)
}

func TestExecute_GlobalWindowRounding(t *testing.T) {
	target := &domain.Employee{
		ID:       "emp-1",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:30", End: "10:15"},
	}

	records := &fakeRecords{
		business:  &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{target},
	}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)

	// Axis rounds outward to 09:00-11:00: 8 events, edges outside the
	// professional's own window
	require.Len(t, resp.Events, 8)
	assert.Equal(t, "09:00", resp.Events[0].Time.String())
	assert.Equal(t, domain.EventNotWorkTime, resp.Events[0].Type)
	assert.Equal(t, domain.EventNotWorkTime, resp.Events[1].Type)
	assert.Equal(t, domain.EventFreeTime, resp.Events[2].Type) // 09:30
	assert.Equal(t, domain.EventFreeTime, resp.Events[4].Type) // 10:00
	assert.Equal(t, domain.EventNotWorkTime, resp.Events[5].Type)
}

func TestExecute_OnLeaveFillsUnavailable(t *testing.T) {
	target := &domain.Employee{
		ID:       "emp-1",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:00", End: "10:00"},
		UnavailableDates: []domain.UnavailableRange{
			{DateStart: testDay, DateEnd: testDay, Reason: "férias"},
		},
	}

	records := &fakeRecords{
		business:  &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{target},
	}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)

	require.Len(t, resp.Events, 4)
	for _, ev := range resp.Events {
		assert.Equal(t, domain.EventUnavailableDate, ev.Type)
	}
}

func TestExecute_NameLookupsAreCached(t *testing.T) {
	target := &domain.Employee{
		ID:       "emp-1",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:00", End: "11:00"},
	}

	records := &fakeRecords{
		business:  &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{target},
		appointments: []*domain.Appointment{
			{
				EmployeeID: "emp-1", ServiceID: "svc-1", CustomerID: "cust-1",
				Date: testDay, StartTime: "09:00", DurationMinutes: 15,
				Status: domain.StatusConfirmed,
			},
			{
				EmployeeID: "emp-1", ServiceID: "svc-1", CustomerID: "cust-1",
				Date: testDay, StartTime: "10:00", DurationMinutes: 15,
				Status: domain.StatusConfirmed,
			},
		},
		customers: map[string]*domain.Customer{"cust-1": {ID: "cust-1", Name: "Carlos"}},
		services:  map[string]*domain.Service{"svc-1": {ID: "svc-1", Name: "Corte"}},
	}

	uc := NewUseCase(records, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, records.customerLookups)
	assert.Equal(t, 1, records.serviceLookups)
}

func TestExecute_FailedNameLookupDegradesToEmptyName(t *testing.T) {
	target := &domain.Employee{
		ID:       "emp-1",
		Status:   domain.EmployeeStatusActive,
		WorkTime: domain.WorkTime{Start: "09:00", End: "10:00"},
	}

	records := &fakeRecords{
		business:  &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{target},
		appointments: []*domain.Appointment{
			{
				EmployeeID: "emp-1", ServiceID: "svc-missing", CustomerID: "cust-missing",
				Date: testDay, StartTime: "09:00", DurationMinutes: 15,
				Status: domain.StatusConfirmed,
			},
		},
	}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Events)
	assert.Equal(t, domain.EventAppointmentTime, resp.Events[0].Type)
	assert.Empty(t, resp.Events[0].CustomerName)
	assert.Empty(t, resp.Events[0].ServiceName)
}

func TestExecute_UnknownProfessionalYieldsEmpty(t *testing.T) {
	records := &fakeRecords{
		business: &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{
			{
				ID:       "emp-1",
				Status:   domain.EmployeeStatusActive,
				WorkTime: domain.WorkTime{Start: "09:00", End: "10:00"},
			},
		},
	}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "barbearia",
		ProfessionalID: "emp-9",
		Date:           testDay,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Events)
}

func TestExecute_BusinessNotFoundDegradesToEmpty(t *testing.T) {
	records := &fakeRecords{businessErr: domain.ErrBusinessNotFound}

	uc := NewUseCase(records, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessSlug:   "nope",
		ProfessionalID: "emp-1",
		Date:           testDay,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Events)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeRecords{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: "emp-1", Date: testDay})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.Execute(context.Background(), &Request{BusinessSlug: "barbearia", Date: testDay})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
