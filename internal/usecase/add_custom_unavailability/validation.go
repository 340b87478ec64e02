package add_custom_unavailability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/ptr"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

// validateRequest валидирует идентификаторы запроса
func validateRequest(req *Request) error {
	if req.TheaterID <= 0 {
		return fmt.Errorf("%w: theaterID must be positive", ErrInvalidInput)
	}

	if req.ScreenID <= 0 {
		return fmt.Errorf("%w: screen_id is required", ErrInvalidInput)
	}

	return nil
}

// buildWindows превращает запрос в окна недоступности с абсолютными границами
// Разбирается весь запрос целиком, поэтому одна ошибка не приводит к частичной записи
func buildWindows(req *Request, loc *time.Location) (slots, days []*domain.Unavailability, err error) {
	for i, r := range req.UnavailableSlots {
		date, err := parseDate(r.Date, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unavailable_slots[%d]", err, i)
		}

		start, err := types.NewTimeStringFromString(r.Start)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unavailable_slots[%d].start=%q", ErrInvalidTimeFormat, i, r.Start)
		}
		end, err := types.NewTimeStringFromString(r.End)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unavailable_slots[%d].end=%q", ErrInvalidTimeFormat, i, r.End)
		}
		if !end.IsAfter(start) {
			return nil, nil, fmt.Errorf("%w: unavailable_slots[%d]: %s-%s", ErrInvalidTimeRange, i, start, end)
		}

		slots = append(slots, &domain.Unavailability{
			ScreenID:  req.ScreenID,
			StartTime: start.On(date, loc),
			EndTime:   end.On(date, loc),
			Reason:    ptr.Ptr(domain.ReasonCustomUnavailability),
		})
	}

	for i, raw := range req.UnavailableDates {
		date, err := parseDate(raw, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: unavailable_dates[%d]", err, i)
		}

		// Весь день: с 00:00:00 до 23:59:59 включительно
		days = append(days, &domain.Unavailability{
			ScreenID:  req.ScreenID,
			StartTime: date,
			EndTime:   endOfDay(date),
			Reason:    ptr.Ptr(domain.ReasonFullDayUnavailability),
		})
	}

	return slots, days, nil
}

// endOfDay возвращает 23:59:59 календарной даты date в её зоне
func endOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, date.Location())
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
	}
	return date, nil
}

