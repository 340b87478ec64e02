package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Причины, с которыми создаются окна недоступности по датам
const (
	ReasonCustomUnavailability  = "Custom unavailability"
	ReasonFullDayUnavailability = "Full-day unavailability"
)

// Виды записей недоступности (для событий и метрик)
const (
	UnavailabilityKindWeekly  = "weekly"
	UnavailabilityKindCustom  = "custom"
	UnavailabilityKindFullDay = "full_day"
)
