package build_agenda

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
)

// Request identifies the business, professional and date to build the
// daily timeline for
type Request struct {
	BusinessSlug   string
	ProfessionalID string
	Date           time.Time
}

// Response is the professional's day at fixed 15-minute cadence, spanning
// the union of all active professionals' working windows so every column
// of the manager calendar shares one time axis
type Response struct {
	BusinessSlug   string
	ProfessionalID string
	Date           time.Time
	Events         []domain.AgendaEvent
}

func emptyResponse(req *Request) *Response {
	return &Response{
		BusinessSlug:   req.BusinessSlug,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Events:         []domain.AgendaEvent{},
	}
}
