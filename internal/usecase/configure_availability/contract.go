package configure_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

// TheaterRepository интерфейс репозитория кинотеатров и залов
type TheaterRepository interface {
	GetTheaterByID(ctx context.Context, id int64) (*domain.Theater, error)
	GetScreen(ctx context.Context, theaterID, screenID int64) (*domain.Screen, error)
	GetFirstScreen(ctx context.Context, theaterID int64) (*domain.Screen, error)
}

// ScheduleRepository интерфейс репозитория недельного расписания
type ScheduleRepository interface {
	GetByScreenAndDay(ctx context.Context, screenID int64, day domain.DayOfWeek) ([]*domain.WeeklySchedule, error)
	Create(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
	UpdateHours(ctx context.Context, id int64, openTime, closeTime types.TimeString) error
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	FindByKey(ctx context.Context, screenID int64, start, end time.Time) (*domain.Unavailability, error)
	Create(ctx context.Context, u *domain.Unavailability) (*domain.Unavailability, error)
}

// TransactionManager интерфейс для управления транзакциями
// Проверка существующих записей и вставка выполняются в сериализуемой транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsCache интерфейс кэша доступных слотов
type SlotsCache interface {
	Invalidate(ctx context.Context, screenID int64) error
}

// EventPublisher интерфейс публикации событий об изменении доступности
type EventPublisher interface {
	PublishAvailabilityChanged(ctx context.Context, event eventbus.AvailabilityChanged) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	ObserveUnavailabilityWritten(kind string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
