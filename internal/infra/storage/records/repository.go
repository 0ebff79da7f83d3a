package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/psqlbuilder"
	"github.com/sessojunior/agendamento/pkg/types"
)

// Repository is a read-only Postgres implementation of the record queries
// the availability engine needs. It never writes: booking mutation belongs
// to another part of the platform.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a records repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessBySlug fetches a business by its unique slug
func (r *Repository) GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	query, args, err := psqlbuilder.Select("id", "slug", "name", "description").
		From("businesses").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var business domain.Business
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&business.ID,
		&business.Slug,
		&business.Name,
		&business.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessBySlug - execute select: %v", ErrExecQuery, err)
	}

	return &business, nil
}

// ListServices fetches the services of a business ordered by display order
func (r *Repository) ListServices(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	builder := psqlbuilder.Select("id", "business_id", "sort_order", "name", "description", "status").
		From("business_services").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		OrderBy("sort_order ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.BusinessID, &svc.Order, &svc.Name, &svc.Description, &svc.Status); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - iterate rows: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByID fetches a single service for name resolution
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "business_id", "sort_order", "name", "description", "status").
		From("business_services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.BusinessID,
		&svc.Order,
		&svc.Name,
		&svc.Description,
		&svc.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - execute select: %v", ErrExecQuery, err)
	}

	return &svc, nil
}

// GetCustomerByID fetches a single customer for name resolution
func (r *Repository) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	query, args, err := psqlbuilder.Select("id", "name").
		From("customer_users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomerByID - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomerByID - execute select: %v", ErrExecQuery, err)
	}

	return &customer, nil
}

// ListEmployees fetches the professionals of a business together with
// their service durations, blocked times and unavailable date ranges
func (r *Repository) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	builder := psqlbuilder.Select("id", "business_id", "name", "avatar", "status", "work_start", "work_end").
		From("business_employees").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		OrderBy("name ASC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	byID := make(map[string]*domain.Employee)

	for rows.Next() {
		var emp domain.Employee
		var workStart, workEnd string
		if err := rows.Scan(&emp.ID, &emp.BusinessID, &emp.Name, &emp.Avatar, &emp.Status, &workStart, &workEnd); err != nil {
			return nil, fmt.Errorf("%w: ListEmployees - scan row: %v", ErrScanRow, err)
		}
		emp.WorkTime = domain.WorkTime{
			Start: types.TimeString(workStart),
			End:   types.TimeString(workEnd),
		}
		employees = append(employees, &emp)
		byID[emp.ID] = &emp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEmployees - iterate rows: %v", ErrScanRow, err)
	}

	if len(employees) == 0 {
		return employees, nil
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	if err := r.attachServices(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.attachBlockedTimes(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.attachUnavailableDates(ctx, byID, ids); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) attachServices(ctx context.Context, byID map[string]*domain.Employee, ids []string) error {
	query, args, err := psqlbuilder.Select("employee_id", "service_id", "duration_minutes").
		From("employee_services").
		Where(squirrel.Eq{"employee_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachServices - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var svc domain.EmployeeService
		if err := rows.Scan(&employeeID, &svc.ServiceID, &svc.DurationMinutes); err != nil {
			return fmt.Errorf("%w: attachServices - scan row: %v", ErrScanRow, err)
		}
		if emp, ok := byID[employeeID]; ok {
			emp.Services = append(emp.Services, svc)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachServices - iterate rows: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) attachBlockedTimes(ctx context.Context, byID map[string]*domain.Employee, ids []string) error {
	query, args, err := psqlbuilder.Select("employee_id", "start_time", "duration_minutes", "description").
		From("employee_blocked_times").
		Where(squirrel.Eq{"employee_id": ids}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachBlockedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachBlockedTimes - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID, startTime string
		var bt domain.BlockedTime
		if err := rows.Scan(&employeeID, &startTime, &bt.DurationMinutes, &bt.Description); err != nil {
			return fmt.Errorf("%w: attachBlockedTimes - scan row: %v", ErrScanRow, err)
		}
		bt.Start = types.TimeString(startTime)
		if emp, ok := byID[employeeID]; ok {
			emp.BlockedTimes = append(emp.BlockedTimes, bt)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachBlockedTimes - iterate rows: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) attachUnavailableDates(ctx context.Context, byID map[string]*domain.Employee, ids []string) error {
	query, args, err := psqlbuilder.Select("employee_id", "date_start", "date_end", "reason").
		From("employee_unavailable_dates").
		Where(squirrel.Eq{"employee_id": ids}).
		OrderBy("date_start ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachUnavailableDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachUnavailableDates - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID string
		var ur domain.UnavailableRange
		if err := rows.Scan(&employeeID, &ur.DateStart, &ur.DateEnd, &ur.Reason); err != nil {
			return fmt.Errorf("%w: attachUnavailableDates - scan row: %v", ErrScanRow, err)
		}
		if emp, ok := byID[employeeID]; ok {
			emp.UnavailableDates = append(emp.UnavailableDates, ur)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachUnavailableDates - iterate rows: %v", ErrScanRow, err)
	}

	return nil
}

// ListAppointments fetches appointments matching the filter
func (r *Repository) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	builder := psqlbuilder.Select(
		"id",
		"business_id",
		"employee_id",
		"service_id",
		"customer_id",
		"date",
		"start_time",
		"duration_minutes",
		"status",
	).
		From("business_appointments").
		Where(squirrel.Eq{"business_id": filter.BusinessID}).
		OrderBy("date ASC", "start_time ASC")

	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": filter.DateTo.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var appointments []*domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		var date time.Time
		var startTime string
		if err := rows.Scan(
			&appt.ID,
			&appt.BusinessID,
			&appt.EmployeeID,
			&appt.ServiceID,
			&appt.CustomerID,
			&date,
			&startTime,
			&appt.DurationMinutes,
			&appt.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: ListAppointments - scan row: %v", ErrScanRow, err)
		}
		appt.Date = date
		appt.StartTime = types.TimeString(startTime)
		appointments = append(appointments, &appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAppointments - iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}
