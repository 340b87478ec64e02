package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TheaterID int64     // ID кинотеатра
	ScreenID  int64     // ID зала
	StartDate time.Time // Первая дата диапазона (используется только дата)
	EndDate   time.Time // Последняя дата диапазона включительно
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ScreenID  int64
	StartDate time.Time
	EndDate   time.Time
	Slots     []*domain.Slot // Порядок: start_time, затем id
}
