package get_dates

import (
	generateDates "github.com/sessojunior/agendamento/internal/usecase/generate_dates"
)

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []DateEntry `json:"dates"`
}

// DateEntry is one selectable day
type DateEntry struct {
	Date      string `json:"date"`
	Formatted string `json:"formatted"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *generateDates.Response) *DatesResponse {
	dates := make([]DateEntry, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = DateEntry{
			Date:      d.Date,
			Formatted: d.Formatted,
		}
	}
	return &DatesResponse{Dates: dates}
}
