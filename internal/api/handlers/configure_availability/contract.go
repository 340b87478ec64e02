package configure_availability

import (
	"context"

	configureAvailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/configure_availability"
)

type ConfigureAvailabilityUseCase interface {
	Execute(ctx context.Context, req *configureAvailability.Request) (*configureAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
