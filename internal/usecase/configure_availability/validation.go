package configure_availability

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

// dayHours разобранные часы работы одного дня
type dayHours struct {
	day       domain.DayOfWeek
	openTime  types.TimeString
	closeTime types.TimeString
}

// dayWindow разобранное окно недоступности одного дня
type dayWindow struct {
	day   domain.DayOfWeek
	start types.TimeString
	end   types.TimeString
}

// validateRequest валидирует идентификаторы запроса
func validateRequest(req *Request) error {
	if req.TheaterID <= 0 {
		return fmt.Errorf("%w: theaterID must be positive", ErrInvalidInput)
	}

	if req.ScreenID != nil && *req.ScreenID <= 0 {
		return fmt.Errorf("%w: screenID must be positive", ErrInvalidInput)
	}

	return nil
}

// parseWeeklySchedule разбирает часы работы по дням
// Результат упорядочен по дням недели, начиная с понедельника
func parseWeeklySchedule(input map[string]DayHours) ([]dayHours, error) {
	result := make([]dayHours, 0, len(input))
	seen := make(map[domain.DayOfWeek]struct{}, len(input))

	for rawDay, hours := range input {
		day, err := parseDay(rawDay, seen)
		if err != nil {
			return nil, err
		}

		openTime, err := parseTime(day, hours.Open)
		if err != nil {
			return nil, err
		}
		closeTime, err := parseTime(day, hours.Close)
		if err != nil {
			return nil, err
		}

		result = append(result, dayHours{day: day, openTime: openTime, closeTime: closeTime})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].day.Index() < result[j].day.Index()
	})

	return result, nil
}

// parseWeeklyUnavailability разбирает окна недоступности по дням
// Дни упорядочены начиная с понедельника, окна внутри дня сохраняют порядок запроса
func parseWeeklyUnavailability(input map[string][]TimeRange) ([]dayWindow, error) {
	days := make([]domain.DayOfWeek, 0, len(input))
	windowsByDay := make(map[domain.DayOfWeek][]TimeRange, len(input))
	seen := make(map[domain.DayOfWeek]struct{}, len(input))

	for rawDay, ranges := range input {
		day, err := parseDay(rawDay, seen)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
		windowsByDay[day] = ranges
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Index() < days[j].Index()
	})

	var result []dayWindow
	for _, day := range days {
		for _, r := range windowsByDay[day] {
			start, err := parseTime(day, r.Start)
			if err != nil {
				return nil, err
			}
			end, err := parseTime(day, r.End)
			if err != nil {
				return nil, err
			}
			if !end.IsAfter(start) {
				return nil, fmt.Errorf("%w: day=%s, start=%s, end=%s", ErrInvalidTimeRange, day, start, end)
			}

			result = append(result, dayWindow{day: day, start: start, end: end})
		}
	}

	return result, nil
}

func parseDay(raw string, seen map[domain.DayOfWeek]struct{}) (domain.DayOfWeek, error) {
	day, err := domain.ParseDayOfWeek(raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDayOfWeek) {
			return "", fmt.Errorf("%w: %q", ErrInvalidDay, raw)
		}
		return "", err
	}

	// "Monday" и "monday" - один и тот же день
	if _, ok := seen[day]; ok {
		return "", fmt.Errorf("%w: day %s is given more than once", ErrInvalidInput, day)
	}
	seen[day] = struct{}{}

	return day, nil
}

func parseTime(day domain.DayOfWeek, raw string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return types.TimeString{}, fmt.Errorf("%w: day=%s, value=%q", ErrInvalidTimeFormat, day, raw)
	}
	return ts, nil
}
