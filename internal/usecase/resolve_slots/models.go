package resolve_slots

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
)

// Request identifies the business, service and date to resolve slots for
type Request struct {
	BusinessSlug string
	ServiceID    string
	Date         time.Time
}

// Response is the ordered list of candidate slots for the day.
// An unknown business, a fetch failure or a day with no eligible
// professionals all yield an empty slot list; callers cannot distinguish
// them from the return value alone.
type Response struct {
	BusinessSlug string
	ServiceID    string
	Date         time.Time
	Slots        []domain.TimeSlot
}

func emptyResponse(req *Request) *Response {
	return &Response{
		BusinessSlug: req.BusinessSlug,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Slots:        []domain.TimeSlot{},
	}
}
