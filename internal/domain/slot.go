package domain

import "time"

// Slot конкретный сеанс фильма в зале
// Создается внешней системой, здесь только читается
type Slot struct {
	ID        int64
	ScreenID  int64
	Movie     string
	StartTime time.Time
	EndTime   time.Time
}

// Overlaps возвращает true, если слот пересекается с окном недоступности
// Используются строгие неравенства: касание границами пересечением не считается
//
// Примеры:
// - Слот 10:00-12:00, окно 11:00-13:00 → ЕСТЬ пересечение
// - Слот 10:00-11:00, окно 11:00-13:00 → НЕТ пересечения (граничат)
// - Слот 09:00-14:00, окно 11:00-12:00 → ЕСТЬ пересечение (окно внутри слота)
func (s *Slot) Overlaps(u *Unavailability) bool {
	return s.StartTime.Before(u.EndTime) && s.EndTime.After(u.StartTime)
}
