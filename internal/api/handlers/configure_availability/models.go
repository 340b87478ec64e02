package configure_availability

import (
	configureAvailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/configure_availability"
)

// ConfigureAvailabilityRequest HTTP request model
type ConfigureAvailabilityRequest struct {
	ScreenID             *int64                        `json:"screen_id,omitempty"`
	WeeklySchedule       map[string]DayHours           `json:"weekly_schedule"`
	WeeklyUnavailability map[string][]UnavailableRange `json:"weekly_unavailability"`
}

// DayHours часы работы в день недели
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// UnavailableRange окно недоступности внутри дня
type UnavailableRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *ConfigureAvailabilityRequest) ToUseCaseRequest(theaterID int64) *configureAvailability.Request {
	schedule := make(map[string]configureAvailability.DayHours, len(r.WeeklySchedule))
	for day, hours := range r.WeeklySchedule {
		schedule[day] = configureAvailability.DayHours{Open: hours.Open, Close: hours.Close}
	}

	unavailability := make(map[string][]configureAvailability.TimeRange, len(r.WeeklyUnavailability))
	for day, ranges := range r.WeeklyUnavailability {
		converted := make([]configureAvailability.TimeRange, len(ranges))
		for i, tr := range ranges {
			converted[i] = configureAvailability.TimeRange{Start: tr.Start, End: tr.End}
		}
		unavailability[day] = converted
	}

	return &configureAvailability.Request{
		TheaterID:            theaterID,
		ScreenID:             r.ScreenID,
		WeeklySchedule:       schedule,
		WeeklyUnavailability: unavailability,
	}
}
