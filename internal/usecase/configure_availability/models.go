package configure_availability

import "strconv"

// Request модель запроса на настройку недельного расписания и недоступности зала
type Request struct {
	TheaterID            int64                  // ID кинотеатра
	ScreenID             *int64                 // ID зала; если не указан, берется первый зал кинотеатра
	WeeklySchedule       map[string]DayHours    // День недели -> часы работы
	WeeklyUnavailability map[string][]TimeRange // День недели -> окна недоступности
}

// ScreenRef возвращает ID зала для логов, "first" если зал не указан
func (r *Request) ScreenRef() string {
	if r.ScreenID == nil {
		return "first"
	}
	return strconv.FormatInt(*r.ScreenID, 10)
}

// DayHours часы работы в формате HH:MM
type DayHours struct {
	Open  string
	Close string
}

// TimeRange окно времени в формате HH:MM
type TimeRange struct {
	Start string
	End   string
}

// Response итог применения запроса
type Response struct {
	ScreenID                int64
	SchedulesCreated        int
	SchedulesUpdated        int
	UnavailabilityCreated   int
	UnavailabilityUnchanged int // окна, которые уже существовали с теми же границами
}

// Changed возвращает true, если запрос что-то записал
func (r *Response) Changed() bool {
	return r.SchedulesCreated+r.SchedulesUpdated+r.UnavailabilityCreated > 0
}
