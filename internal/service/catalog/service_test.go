package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessojunior/agendamento/internal/domain"
)

type fakeRecords struct {
	business     *domain.Business
	businessErr  error
	services     []*domain.Service
	servicesErr  error
	employees    []*domain.Employee
	employeesErr error
}

func (f *fakeRecords) GetBusinessBySlug(_ context.Context, _ string) (*domain.Business, error) {
	return f.business, f.businessErr
}

func (f *fakeRecords) ListServices(_ context.Context, _ domain.ServiceFilter) ([]*domain.Service, error) {
	return f.services, f.servicesErr
}

func (f *fakeRecords) ListEmployees(_ context.Context, _ domain.EmployeeFilter) ([]*domain.Employee, error) {
	return f.employees, f.employeesErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetBusiness(t *testing.T) {
	svc := NewService(&fakeRecords{
		business: &domain.Business{ID: "biz-1", Slug: "barbearia", Name: "Barbearia Central"},
	}, nopLogger{})

	business, err := svc.GetBusiness(context.Background(), "barbearia")
	require.NoError(t, err)
	assert.Equal(t, "biz-1", business.ID)
	assert.Equal(t, "Barbearia Central", business.Name)
}

func TestGetBusiness_NotFound(t *testing.T) {
	svc := NewService(&fakeRecords{businessErr: domain.ErrBusinessNotFound}, nopLogger{})

	_, err := svc.GetBusiness(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusinessNotFound))
}

func TestGetBusiness_RecordSourceFailure(t *testing.T) {
	svc := NewService(&fakeRecords{businessErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetBusiness(context.Background(), "barbearia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestGetBusiness_EmptySlug(t *testing.T) {
	svc := NewService(&fakeRecords{}, nopLogger{})

	_, err := svc.GetBusiness(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestListServices_OrderedByDisplayOrder(t *testing.T) {
	svc := NewService(&fakeRecords{
		business: &domain.Business{ID: "biz-1", Slug: "barbearia"},
		services: []*domain.Service{
			{ID: "svc-2", Order: 2, Name: "Barba", Status: domain.ServiceStatusActive},
			{ID: "svc-1", Order: 1, Name: "Corte", Status: domain.ServiceStatusActive},
		},
	}, nopLogger{})

	services, err := svc.ListServices(context.Background(), "barbearia")
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Corte", services[0].Name)
	assert.Equal(t, "Barba", services[1].Name)
}

func TestListServiceProfessionals(t *testing.T) {
	svc := NewService(&fakeRecords{
		business: &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{
			{
				ID:   "emp-1",
				Name: "Ana",
				Services: []domain.EmployeeService{
					{ServiceID: "svc-1", DurationMinutes: 30},
				},
			},
			{
				ID:   "emp-2",
				Name: "Bruno",
				Services: []domain.EmployeeService{
					{ServiceID: "svc-2", DurationMinutes: 45},
				},
			},
		},
	}, nopLogger{})

	professionals, err := svc.ListServiceProfessionals(context.Background(), "barbearia", "svc-1")
	require.NoError(t, err)

	require.Len(t, professionals, 1)
	assert.Equal(t, "emp-1", professionals[0].ID)
	assert.Equal(t, 30, professionals[0].DurationMinutes)
}

func TestListProfessionals(t *testing.T) {
	svc := NewService(&fakeRecords{
		business: &domain.Business{ID: "biz-1", Slug: "barbearia"},
		employees: []*domain.Employee{
			{ID: "emp-1", Name: "Ana", Avatar: "ana.png"},
			{ID: "emp-2", Name: "Bruno"},
		},
	}, nopLogger{})

	professionals, err := svc.ListProfessionals(context.Background(), "barbearia")
	require.NoError(t, err)

	require.Len(t, professionals, 2)
	assert.Equal(t, "ana.png", professionals[0].Avatar)
	assert.Zero(t, professionals[0].DurationMinutes)
}

func TestListProfessionals_BusinessNotFound(t *testing.T) {
	svc := NewService(&fakeRecords{businessErr: domain.ErrBusinessNotFound}, nopLogger{})

	_, err := svc.ListProfessionals(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusinessNotFound))
}
