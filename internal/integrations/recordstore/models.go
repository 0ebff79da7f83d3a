package recordstore

import (
	"strconv"
	"strings"
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/types"
)

// Raw record shapes as served by the record store. Numeric fields arrive
// inconsistently typed across collections (some durations are strings),
// so they are decoded leniently and converted explicitly.

// flexNumber accepts both JSON numbers and quoted numeric strings.
// Conversion errors surface at Int64 time, keeping a single bad field from
// failing the whole array decode.
type flexNumber string

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	*n = flexNumber(strings.Trim(string(data), `"`))
	return nil
}

func (n flexNumber) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

type businessRecord struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r businessRecord) toDomain() *domain.Business {
	return &domain.Business{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
	}
}

type serviceRecord struct {
	ID          string      `json:"id"`
	BusinessID  string      `json:"business_id"`
	Order       flexNumber `json:"order"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
}

func (r serviceRecord) toDomain() *domain.Service {
	order, _ := r.Order.Int64()
	return &domain.Service{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Order:       int(order),
		Name:        r.Name,
		Description: r.Description,
		Status:      domain.ServiceStatus(r.Status),
	}
}

type employeeServiceRecord struct {
	BusinessServiceID string     `json:"business_service_id"`
	Duration          flexNumber `json:"duration"`
}

type workTimeRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type blockedTimeRecord struct {
	Time        string     `json:"time"`
	Duration    flexNumber `json:"duration"`
	Description string     `json:"description"`
}

type unavailableDateRecord struct {
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
	Reason    string `json:"reason"`
}

type employeeRecord struct {
	ID               string                  `json:"id"`
	BusinessID       string                  `json:"business_id"`
	Name             string                  `json:"name"`
	Avatar           string                  `json:"avatar"`
	Status           string                  `json:"status"`
	BusinessServices []employeeServiceRecord `json:"business_services"`
	WorkTime         workTimeRecord          `json:"work_time"`
	BlockedTimes     []blockedTimeRecord     `json:"blocked_times"`
	UnavailableDates []unavailableDateRecord `json:"unavailable_dates"`
}

// toDomain converts the raw employee record, skipping malformed nested
// entries instead of failing the whole record. Records predating the
// status field are treated as active.
func (r employeeRecord) toDomain() *domain.Employee {
	status := domain.EmployeeStatus(r.Status)
	if r.Status == "" {
		status = domain.EmployeeStatusActive
	}

	services := make([]domain.EmployeeService, 0, len(r.BusinessServices))
	for _, s := range r.BusinessServices {
		duration, err := s.Duration.Int64()
		if err != nil || s.BusinessServiceID == "" {
			continue
		}
		services = append(services, domain.EmployeeService{
			ServiceID:       s.BusinessServiceID,
			DurationMinutes: int(duration),
		})
	}

	blocked := make([]domain.BlockedTime, 0, len(r.BlockedTimes))
	for _, bt := range r.BlockedTimes {
		duration, err := bt.Duration.Int64()
		if err != nil {
			continue
		}
		blocked = append(blocked, domain.BlockedTime{
			Start:           types.TimeString(bt.Time),
			DurationMinutes: int(duration),
			Description:     bt.Description,
		})
	}

	unavailable := make([]domain.UnavailableRange, 0, len(r.UnavailableDates))
	for _, u := range r.UnavailableDates {
		start, err := time.Parse(domain.DateFormat, u.DateStart)
		if err != nil {
			continue
		}
		end, err := time.Parse(domain.DateFormat, u.DateEnd)
		if err != nil {
			continue
		}
		unavailable = append(unavailable, domain.UnavailableRange{
			DateStart: start,
			DateEnd:   end,
			Reason:    u.Reason,
		})
	}

	return &domain.Employee{
		ID:               r.ID,
		BusinessID:       r.BusinessID,
		Name:             r.Name,
		Avatar:           r.Avatar,
		Status:           status,
		Services:         services,
		WorkTime:         domain.WorkTime{Start: types.TimeString(r.WorkTime.Start), End: types.TimeString(r.WorkTime.End)},
		BlockedTimes:     blocked,
		UnavailableDates: unavailable,
	}
}

type appointmentRecord struct {
	ID                 string      `json:"id"`
	BusinessID         string      `json:"business_id"`
	BusinessEmployeeID string      `json:"business_employee_id"`
	BusinessServiceID  string      `json:"business_service_id"`
	CustomerUserID     string      `json:"customer_user_id"`
	Date               string     `json:"date"`
	Time               string     `json:"time"`
	Duration           flexNumber `json:"duration"`
	Status             string     `json:"status"`
}

// toDomain converts the raw appointment record; ok is false when the
// record is unusable (bad date or duration)
func (r appointmentRecord) toDomain() (*domain.Appointment, bool) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, false
	}
	duration, err := r.Duration.Int64()
	if err != nil {
		return nil, false
	}

	return &domain.Appointment{
		ID:              r.ID,
		BusinessID:      r.BusinessID,
		EmployeeID:      r.BusinessEmployeeID,
		ServiceID:       r.BusinessServiceID,
		CustomerID:      r.CustomerUserID,
		Date:            date,
		StartTime:       types.TimeString(r.Time),
		DurationMinutes: int(duration),
		Status:          domain.AppointmentStatus(r.Status),
	}, true
}

type customerRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r customerRecord) toDomain() *domain.Customer {
	return &domain.Customer{ID: r.ID, Name: r.Name}
}
