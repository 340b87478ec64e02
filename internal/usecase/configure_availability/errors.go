package configure_availability

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("theater not found")

	// ErrScreenNotFound возвращается, когда зал не найден в кинотеатре
	ErrScreenNotFound = errors.New("screen not found")

	// ErrNoScreens возвращается, когда зал не указан, а у кинотеатра нет ни одного зала
	ErrNoScreens = errors.New("no screens available for this theater")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDay возвращается при неизвестном дне недели
	ErrInvalidDay = errors.New("invalid day of week")

	// ErrInvalidTimeFormat возвращается при некорректном времени (ожидается HH:MM)
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidTimeRange возвращается, когда окно недоступности заканчивается не позже начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrAmbiguousSchedule возвращается, когда на день недели уже есть несколько записей расписания
	ErrAmbiguousSchedule = errors.New("multiple schedules exist for this day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
