package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TheaterID <= 0 {
		return fmt.Errorf("%w: theaterID must be positive", ErrInvalidInput)
	}

	if req.ScreenID <= 0 {
		return fmt.Errorf("%w: screenID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	// Сравниваются только календарные даты
	if domain.IsDateAfter(req.StartDate, req.EndDate) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}

	return nil
}
