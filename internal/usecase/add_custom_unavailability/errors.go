package add_custom_unavailability

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("theater not found")

	// ErrScreenNotFound возвращается, когда зал не найден в кинотеатре
	ErrScreenNotFound = errors.New("screen not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateFormat возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidTimeFormat возвращается при некорректном времени (ожидается HH:MM)
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidTimeRange возвращается, когда окно заканчивается не позже начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
