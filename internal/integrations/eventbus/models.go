package eventbus

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityChanged событие об изменении расписания или недоступности зала
// Публикуется после фиксации транзакции записи
type AvailabilityChanged struct {
	ID         string    `json:"id"`
	TheaterID  int64     `json:"theater_id"`
	ScreenID   int64     `json:"screen_id"`
	Kind       string    `json:"kind"`  // "weekly", "custom" или "full_day"
	Count      int       `json:"count"` // сколько записей создано или обновлено
	OccurredAt time.Time `json:"occurred_at"`
}

// NewAvailabilityChanged создает событие с новым идентификатором
func NewAvailabilityChanged(theaterID, screenID int64, kind string, count int, occurredAt time.Time) AvailabilityChanged {
	return AvailabilityChanged{
		ID:         uuid.NewString(),
		TheaterID:  theaterID,
		ScreenID:   screenID,
		Kind:       kind,
		Count:      count,
		OccurredAt: occurredAt.UTC(),
	}
}
