package get_available_professionals

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
	availableProfessionals "github.com/sessojunior/agendamento/internal/usecase/available_professionals"
	"github.com/sessojunior/agendamento/pkg/types"
)

// AvailableProfessionalsResponse HTTP response model
type AvailableProfessionalsResponse struct {
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	ServiceID     string            `json:"serviceId"`
	Professionals []ProfessionalRef `json:"professionals"`
}

// ProfessionalRef identifies a free professional
type ProfessionalRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *availableProfessionals.Response) *AvailableProfessionalsResponse {
	pros := make([]ProfessionalRef, len(resp.Professionals))
	for i, p := range resp.Professionals {
		pros[i] = ProfessionalRef{ID: p.ID, Name: p.Name}
	}

	return &AvailableProfessionalsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time.String(),
		ServiceID:     resp.ServiceID,
		Professionals: pros,
	}
}

// ToUseCaseRequest builds the use case request from route and query values
func ToUseCaseRequest(slug, serviceID, dateStr, timeStr string) (*availableProfessionals.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	clock, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &availableProfessionals.Request{
		BusinessSlug: slug,
		ServiceID:    serviceID,
		Date:         date,
		Time:         clock,
	}, nil
}
