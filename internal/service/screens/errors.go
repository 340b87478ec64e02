package screens

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("theater not found")

	// ErrScreenNotFound возвращается, когда зал не найден в кинотеатре
	ErrScreenNotFound = errors.New("screen not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
