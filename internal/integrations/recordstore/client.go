package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
)

// Logger is the logging interface required by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client reads business records from the json-server style record store.
// All queries are filter-by-field GETs; the client never writes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a record store client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusinessBySlug fetches a business by its unique slug
func (c *Client) GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	query := url.Values{}
	query.Set("slug", slug)

	body, err := c.get(ctx, "/business", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[businessRecord](c, "/business", body)
	if len(records) == 0 {
		return nil, domain.ErrBusinessNotFound
	}

	return records[0].toDomain(), nil
}

// ListEmployees fetches the professionals of a business, optionally
// filtered by status
func (c *Client) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error) {
	query := url.Values{}
	query.Set("business_id", filter.BusinessID)
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}

	body, err := c.get(ctx, "/business_employee", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[employeeRecord](c, "/business_employee", body)
	employees := make([]*domain.Employee, 0, len(records))
	for _, r := range records {
		employees = append(employees, r.toDomain())
	}

	return employees, nil
}

// ListServices fetches the services of a business ordered by their display
// order, optionally filtered by status
func (c *Client) ListServices(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	query := url.Values{}
	query.Set("business_id", filter.BusinessID)
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	query.Set("_sort", "order")
	query.Set("_order", "asc")

	body, err := c.get(ctx, "/business_service", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[serviceRecord](c, "/business_service", body)
	services := make([]*domain.Service, 0, len(records))
	for _, r := range records {
		services = append(services, r.toDomain())
	}

	return services, nil
}

// ListAppointments fetches appointments matching the filter. Records with
// unusable date or duration data are skipped with a diagnostic.
func (c *Client) ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	query := url.Values{}
	query.Set("business_id", filter.BusinessID)
	if filter.EmployeeID != nil {
		query.Set("business_employee_id", *filter.EmployeeID)
	}
	if filter.DateFrom != nil {
		query.Set("date_gte", filter.DateFrom.Format(domain.DateFormat))
	}
	if filter.DateTo != nil {
		query.Set("date_lte", filter.DateTo.Format(domain.DateFormat))
	}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}

	body, err := c.get(ctx, "/business_appointment", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[appointmentRecord](c, "/business_appointment", body)
	appointments := make([]*domain.Appointment, 0, len(records))
	for _, r := range records {
		appt, ok := r.toDomain()
		if !ok {
			c.log.Warn("recordstore: skipping malformed appointment record id=%s", r.ID)
			continue
		}
		appointments = append(appointments, appt)
	}

	return appointments, nil
}

// GetServiceByID fetches a single service, used for name resolution on the
// manager calendar
func (c *Client) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	query := url.Values{}
	query.Set("id", id)

	body, err := c.get(ctx, "/business_service", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[serviceRecord](c, "/business_service", body)
	if len(records) == 0 {
		return nil, domain.ErrServiceNotFound
	}

	return records[0].toDomain(), nil
}

// GetCustomerByID fetches a single customer, used for name resolution on
// the manager calendar
func (c *Client) GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := url.Values{}
	query.Set("id", id)

	body, err := c.get(ctx, "/customer_user", query)
	if err != nil {
		return nil, err
	}

	records := decodeList[customerRecord](c, "/customer_user", body)
	if len(records) == 0 {
		return nil, domain.ErrCustomerNotFound
	}

	return records[0].toDomain(), nil
}

// get performs a GET request against the record store and returns the raw
// response body
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d from %s: %s",
			ErrInvalidResponse, resp.StatusCode, path, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrInternal, err)
	}

	return body, nil
}

// decodeList decodes an array response. The store is expected to always
// return arrays for filtered queries; anything else is treated as empty
// with a diagnostic rather than failing the computation.
func decodeList[T any](c *Client, path string, body []byte) []T {
	var records []T
	if err := json.Unmarshal(body, &records); err != nil {
		c.log.Warn("recordstore: unexpected non-array response from %s: %v", path, err)
		return nil
	}
	return records
}
