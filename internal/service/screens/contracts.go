package screens

import (
	"context"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

// TheaterRepository интерфейс репозитория кинотеатров и залов
type TheaterRepository interface {
	GetTheaterByID(ctx context.Context, id int64) (*domain.Theater, error)
	GetScreen(ctx context.Context, theaterID, screenID int64) (*domain.Screen, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetAllByScreen(ctx context.Context, screenID int64) ([]*domain.WeeklySchedule, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	GetByScreen(ctx context.Context, filter domain.UnavailabilityFilter) ([]*domain.Unavailability, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
