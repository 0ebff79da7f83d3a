package get_time_slots

import (
	"time"

	"github.com/sessojunior/agendamento/internal/domain"
	resolveSlots "github.com/sessojunior/agendamento/internal/usecase/resolve_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date      string     `json:"date"`
	ServiceID string     `json:"serviceId"`
	Slots     []TimeSlot `json:"slots"`
}

// TimeSlot is one candidate start time
type TimeSlot struct {
	Time          string            `json:"time"`
	Available     bool              `json:"available"`
	Reason        string            `json:"reason,omitempty"`
	Professionals []ProfessionalRef `json:"professionals"`
}

// ProfessionalRef identifies a professional free on a slot
type ProfessionalRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *resolveSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		pros := make([]ProfessionalRef, len(slot.Professionals))
		for j, p := range slot.Professionals {
			pros[j] = ProfessionalRef{ID: p.ID, Name: p.Name}
		}
		slots[i] = TimeSlot{
			Time:          slot.Time.String(),
			Available:     slot.Available,
			Reason:        slot.Reason,
			Professionals: pros,
		}
	}

	return &TimeSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest builds the use case request from route and query values
func ToUseCaseRequest(slug, serviceID, dateStr string) (*resolveSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &resolveSlots.Request{
		BusinessSlug: slug,
		ServiceID:    serviceID,
		Date:         date,
	}, nil
}
