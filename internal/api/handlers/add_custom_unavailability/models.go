package add_custom_unavailability

import (
	addCustomUnavailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/add_custom_unavailability"
)

// AddCustomUnavailabilityRequest HTTP request model
type AddCustomUnavailabilityRequest struct {
	ScreenID         int64             `json:"screen_id"`
	UnavailableSlots []UnavailableSlot `json:"unavailable_slots"`
	UnavailableDates []string          `json:"unavailable_dates"`
}

// UnavailableSlot окно недоступности в конкретную дату
type UnavailableSlot struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *AddCustomUnavailabilityRequest) ToUseCaseRequest(theaterID int64) *addCustomUnavailability.Request {
	slots := make([]addCustomUnavailability.DateRange, len(r.UnavailableSlots))
	for i, s := range r.UnavailableSlots {
		slots[i] = addCustomUnavailability.DateRange{Date: s.Date, Start: s.Start, End: s.End}
	}

	return &addCustomUnavailability.Request{
		TheaterID:        theaterID,
		ScreenID:         r.ScreenID,
		UnavailableSlots: slots,
		UnavailableDates: r.UnavailableDates,
	}
}
