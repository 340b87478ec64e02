package get_available_slots

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("theater not found")

	// ErrScreenNotFound возвращается, когда зал не найден в кинотеатре
	ErrScreenNotFound = errors.New("screen not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange возвращается, когда начальная дата позже конечной
	ErrInvalidRange = errors.New("start date is after end date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
