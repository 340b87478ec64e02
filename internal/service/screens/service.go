package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	theaterRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
	"github.com/m04kA/SMC-ScreenAvailability/internal/service/screens/models"
)

// Service сервис чтения расписания и недоступности залов
type Service struct {
	theaterRepo        TheaterRepository
	scheduleRepo       ScheduleRepository
	unavailabilityRepo UnavailabilityRepository
	location           *time.Location
	logger             Logger
}

// NewService создает новый экземпляр сервиса залов
func NewService(
	theaterRepo TheaterRepository,
	scheduleRepo ScheduleRepository,
	unavailabilityRepo UnavailabilityRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		theaterRepo:        theaterRepo,
		scheduleRepo:       scheduleRepo,
		unavailabilityRepo: unavailabilityRepo,
		location:           location,
		logger:             logger,
	}
}

// GetSchedule получает недельное расписание зала и окна недоступности
// Если указан диапазон дат, возвращаются окна, задевающие хотя бы один его день
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: theater=%d, screen=%d", req.TheaterID, req.ScreenID)

	// 1. Валидируем диапазон
	if req.StartDate != nil && req.EndDate != nil && domain.IsDateAfter(*req.StartDate, *req.EndDate) {
		s.logger.Warn("GetSchedule: start date is after end date")
		return nil, fmt.Errorf("%w: start_date is after end_date", ErrInvalidInput)
	}

	// 2. Проверяем кинотеатр и зал
	if _, err := s.theaterRepo.GetTheaterByID(ctx, req.TheaterID); err != nil {
		if errors.Is(err, theaterRepo.ErrTheaterNotFound) {
			s.logger.Warn("GetSchedule: theater id=%d not found", req.TheaterID)
			return nil, ErrTheaterNotFound
		}
		s.logger.Error("GetSchedule: failed to get theater id=%d: %v", req.TheaterID, err)
		return nil, fmt.Errorf("%w: GetSchedule - theater: %v", ErrInternal, err)
	}

	screen, err := s.theaterRepo.GetScreen(ctx, req.TheaterID, req.ScreenID)
	if err != nil {
		if errors.Is(err, theaterRepo.ErrScreenNotFound) {
			s.logger.Warn("GetSchedule: screen id=%d not found in theater id=%d", req.ScreenID, req.TheaterID)
			return nil, ErrScreenNotFound
		}
		s.logger.Error("GetSchedule: failed to get screen id=%d: %v", req.ScreenID, err)
		return nil, fmt.Errorf("%w: GetSchedule - screen: %v", ErrInternal, err)
	}

	// 3. Недельное расписание
	schedules, err := s.scheduleRepo.GetAllByScreen(ctx, screen.ID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get schedule for screen=%d: %v", screen.ID, err)
		return nil, fmt.Errorf("%w: GetSchedule - schedule: %v", ErrInternal, err)
	}

	// 4. Окна недоступности
	filter := domain.UnavailabilityFilter{ScreenID: screen.ID}
	if req.StartDate != nil {
		from := domain.DayStart(*req.StartDate, s.location)
		filter.From = &from
	}
	if req.EndDate != nil {
		before := domain.NextDayStart(*req.EndDate, s.location)
		filter.Before = &before
	}

	windows, err := s.unavailabilityRepo.GetByScreen(ctx, filter)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get unavailability for screen=%d: %v", screen.ID, err)
		return nil, fmt.Errorf("%w: GetSchedule - unavailability: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: screen=%d, schedule days=%d, windows=%d", screen.ID, len(schedules), len(windows))
	return models.FromDomain(screen, schedules, windows), nil
}
