package theater

import "errors"

var (
	// ErrTheaterNotFound возвращается, когда кинотеатр не найден
	ErrTheaterNotFound = errors.New("theater.repository: theater not found")

	// ErrScreenNotFound возвращается, когда зал не найден или принадлежит другому кинотеатру
	ErrScreenNotFound = errors.New("theater.repository: screen not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("theater.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("theater.repository: failed to scan row")
)
