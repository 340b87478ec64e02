package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/get_available_slots"
)

// AvailableSlot HTTP response model
type AvailableSlot struct {
	ID        int64     `json:"id"`
	Screen    int64     `json:"screen"`
	Movie     string    `json:"movie"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Пустой результат отдается как [], а не null
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Screen:    slot.ScreenID,
			Movie:     slot.Movie,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}
	return slots
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(theaterID, screenID int64, startDateStr, endDateStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	startDate, err := time.ParseInLocation(domain.DateFormat, startDateStr, loc)
	if err != nil {
		return nil, err
	}

	endDate, err := time.ParseInLocation(domain.DateFormat, endDateStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TheaterID: theaterID,
		ScreenID:  screenID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
