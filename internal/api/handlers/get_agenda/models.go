package get_agenda

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
	buildAgenda "github.com/sessojunior/agendamento/internal/usecase/build_agenda"
)

// AgendaResponse HTTP response model
type AgendaResponse struct {
	Date           string        `json:"date"`
	ProfessionalID string        `json:"professionalId"`
	Events         []AgendaEvent `json:"events"`
}

// AgendaEvent is one 15-minute step of the professional's day
type AgendaEvent struct {
	Time            string `json:"time"`
	Type            string `json:"type"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Description     string `json:"description,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`
	ServiceName     string `json:"serviceName,omitempty"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *buildAgenda.Response) *AgendaResponse {
	events := make([]AgendaEvent, len(resp.Events))
	for i, ev := range resp.Events {
		events[i] = AgendaEvent{
			Time:            ev.Time.String(),
			Type:            string(ev.Type),
			DurationMinutes: ev.DurationMinutes,
			Description:     ev.Description,
			CustomerName:    ev.CustomerName,
			ServiceName:     ev.ServiceName,
		}
	}

	return &AgendaResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ProfessionalID: resp.ProfessionalID,
		Events:         events,
	}
}

// ToUseCaseRequest builds the use case request from route and query values
func ToUseCaseRequest(slug, professionalID, dateStr string) (*buildAgenda.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &buildAgenda.Request{
		BusinessSlug:   slug,
		ProfessionalID: professionalID,
		Date:           date,
	}, nil
}
