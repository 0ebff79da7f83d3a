package available_professionals

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/types"
)

// Request identifies the business, service, date and exact clock time to
// test professionals against
type Request struct {
	BusinessSlug string
	ServiceID    string
	Date         time.Time
	Time         types.TimeString
}

// Response lists the professionals free at the requested instant
type Response struct {
	BusinessSlug  string
	ServiceID     string
	Date          time.Time
	Time          types.TimeString
	Professionals []domain.ProfessionalRef
}

func emptyResponse(req *Request) *Response {
	return &Response{
		BusinessSlug:  req.BusinessSlug,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Professionals: []domain.ProfessionalRef{},
	}
}
