package domain

import "time"

// DayStart возвращает полночь календарной даты date в зоне loc
// Из date используются только год, месяц и день
func DayStart(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextDayStart возвращает полночь следующего за date дня в зоне loc
func NextDayStart(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// IsDateAfter сравнивает только календарные даты: true, если a позже b
func IsDateAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
