package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

// Request модели

// GetScheduleRequest запрос на получение расписания зала
// StartDate и EndDate опциональны и ограничивают список окон недоступности
type GetScheduleRequest struct {
	TheaterID int64
	ScreenID  int64
	StartDate *time.Time
	EndDate   *time.Time
}

// Response модели

// ScheduleResponse расписание и недоступность зала
type ScheduleResponse struct {
	TheaterID      int64                 `json:"theater_id"`
	ScreenID       int64                 `json:"screen_id"`
	ScreenName     string                `json:"screen_name"`
	WeeklySchedule []DayScheduleResponse `json:"weekly_schedule"`
	Unavailability []WindowResponse      `json:"unavailability"`
}

// DayScheduleResponse часы работы в день недели
type DayScheduleResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// WindowResponse окно недоступности
type WindowResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    *string   `json:"reason"`
}

// Конвертеры

// FromDomain собирает ответ из доменных моделей
// Дни недели упорядочены с понедельника, окна - в порядке репозитория
func FromDomain(screen *domain.Screen, schedules []*domain.WeeklySchedule, windows []*domain.Unavailability) *ScheduleResponse {
	days := make([]DayScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		days = append(days, DayScheduleResponse{
			ID:        s.ID,
			DayOfWeek: string(s.DayOfWeek),
			OpenTime:  s.OpenTime.String(),
			CloseTime: s.CloseTime.String(),
		})
	}
	sort.SliceStable(days, func(i, j int) bool {
		return domain.DayOfWeek(days[i].DayOfWeek).Index() < domain.DayOfWeek(days[j].DayOfWeek).Index()
	})

	result := make([]WindowResponse, 0, len(windows))
	for _, w := range windows {
		result = append(result, WindowResponse{
			ID:        w.ID,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Reason:    w.Reason,
		})
	}

	return &ScheduleResponse{
		TheaterID:      screen.TheaterID,
		ScreenID:       screen.ID,
		ScreenName:     screen.Name,
		WeeklySchedule: days,
		Unavailability: result,
	}
}
