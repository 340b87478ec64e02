package get_screen_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens/models"
)

type ScreenService interface {
	GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
