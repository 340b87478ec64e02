package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/pkg/types"
)

// ErrInvalidDayOfWeek возвращается при неизвестном названии дня недели
var ErrInvalidDayOfWeek = errors.New("invalid day of week")

// DayOfWeek день недели в каноничном виде ("monday" ... "sunday")
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Week дни недели по порядку
var Week = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseDayOfWeek приводит название дня к каноничному виду, регистр не важен
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	for _, d := range Week {
		if d == day {
			return day, nil
		}
	}
	return "", ErrInvalidDayOfWeek
}

// Index порядковый номер дня, понедельник = 0
func (d DayOfWeek) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

// WeeklySchedule часы работы зала в определенный день недели
// Для пары (ScreenID, DayOfWeek) допускается не более одной записи
type WeeklySchedule struct {
	ID        int64
	ScreenID  int64
	DayOfWeek DayOfWeek
	OpenTime  types.TimeString
	CloseTime types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}
