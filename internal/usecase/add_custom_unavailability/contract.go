package add_custom_unavailability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
)

// TheaterRepository интерфейс репозитория кинотеатров и залов
type TheaterRepository interface {
	GetTheaterByID(ctx context.Context, id int64) (*domain.Theater, error)
	GetScreen(ctx context.Context, theaterID, screenID int64) (*domain.Screen, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	Create(ctx context.Context, u *domain.Unavailability) (*domain.Unavailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
