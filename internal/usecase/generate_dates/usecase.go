package generate_dates

import (
	"fmt"
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
)

// Portuguese abbreviations used on the booking page
var (
	weekdays = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	months   = [...]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
)

// displayZone is the fixed UTC-3 offset all customer-facing dates are
// rendered in, regardless of the host timezone
var displayZone = time.FixedZone("UTC-3", domain.DisplayUTCOffsetHours*60*60)

// UseCase generates the selectable day sequence for the booking page.
// Pure calendar math; no external reads.
type UseCase struct{}

// NewUseCase creates a new use case instance
func NewUseCase() *UseCase {
	return &UseCase{}
}

// Execute returns min(req.Days, 60) contiguous days starting at
// req.StartDate inclusive. The start date is anchored at noon UTC before
// iterating so daylight-saving and timezone edges cannot shift the day,
// then each day is re-localized to the fixed UTC-3 display offset.
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	if req.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if req.Days < 0 {
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	days := req.Days
	if days > domain.MaxScheduleDays {
		days = domain.MaxScheduleDays
	}

	base := time.Date(req.StartDate.Year(), req.StartDate.Month(), req.StartDate.Day(), 12, 0, 0, 0, time.UTC)

	dates := make([]DateEntry, 0, days)
	for i := 0; i < days; i++ {
		local := base.AddDate(0, 0, i).In(displayZone)

		dates = append(dates, DateEntry{
			Date: local.Format(domain.DateFormat),
			Formatted: fmt.Sprintf("%s %02d %s %d",
				weekdays[int(local.Weekday())], local.Day(), months[int(local.Month())-1], local.Year()),
		})
	}

	return &Response{Dates: dates}, nil
}
