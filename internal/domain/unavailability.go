package domain

import "time"

// Unavailability окно, в течение которого зал недоступен
// Границы - абсолютные моменты времени; окна одного зала могут пересекаться
type Unavailability struct {
	ID        int64
	ScreenID  int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedAt time.Time
}

// UnavailabilityFilter фильтр окон недоступности зала
type UnavailabilityFilter struct {
	ScreenID int64      // Обязательный параметр
	From     *time.Time // Окно должно заканчиваться не раньше From (опционально)
	Before   *time.Time // Окно должно начинаться строго раньше Before (опционально)
}
