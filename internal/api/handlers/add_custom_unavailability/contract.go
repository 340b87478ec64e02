package add_custom_unavailability

import (
	"context"

	addCustomUnavailability "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/add_custom_unavailability"
)

type AddCustomUnavailabilityUseCase interface {
	Execute(ctx context.Context, req *addCustomUnavailability.Request) (*addCustomUnavailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
