package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

// TheaterRepository интерфейс репозитория кинотеатров и залов
type TheaterRepository interface {
	GetTheaterByID(ctx context.Context, id int64) (*domain.Theater, error)
	GetScreen(ctx context.Context, theaterID, screenID int64) (*domain.Screen, error)
}

// UnavailabilityRepository интерфейс репозитория окон недоступности
type UnavailabilityRepository interface {
	// GetByScreen получает окна зала с учетом фильтра по времени
	GetByScreen(ctx context.Context, filter domain.UnavailabilityFilter) ([]*domain.Unavailability, error)
}

// SlotRepository интерфейс репозитория сеансов
type SlotRepository interface {
	// GetByScreenWithin получает слоты зала, целиком лежащие в [from, to]
	GetByScreenWithin(ctx context.Context, screenID int64, from, to time.Time) ([]*domain.Slot, error)
}

// SlotsCache интерфейс кэша доступных слотов
type SlotsCache interface {
	Version(ctx context.Context, screenID int64) (int64, error)
	Get(ctx context.Context, screenID, version int64, startDate, endDate time.Time) ([]*domain.Slot, error)
	Set(ctx context.Context, screenID, version int64, startDate, endDate time.Time, slots []*domain.Slot) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	ObserveSlotsFiltered(total, available int)
	ObserveCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
