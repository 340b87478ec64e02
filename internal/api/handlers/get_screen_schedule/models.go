package get_screen_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens/models"
)

// ToServiceRequest формирует запрос к сервису из URL и query параметров
// Пустые start_date и end_date означают отсутствие ограничения
func ToServiceRequest(theaterID, screenID int64, startDateStr, endDateStr string, loc *time.Location) (*models.GetScheduleRequest, error) {
	req := &models.GetScheduleRequest{
		TheaterID: theaterID,
		ScreenID:  screenID,
	}

	if startDateStr != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, startDateStr, loc)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, endDateStr, loc)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
