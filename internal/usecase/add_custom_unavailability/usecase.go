package add_custom_unavailability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	theaterRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
)

// UseCase use case добавления недоступности зала по конкретным датам
//
// Записи всегда добавляются: повтор того же запроса создает дубликаты
type UseCase struct {
	theaterRepo        TheaterRepository
	unavailabilityRepo UnavailabilityRepository
	txManager          TransactionManager
	cache              SlotsCache
	publisher          EventPublisher
	metrics            Metrics
	timeProvider       TimeProvider
	location           *time.Location
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	theaterRepo TheaterRepository,
	unavailabilityRepo UnavailabilityRepository,
	txManager TransactionManager,
	cache SlotsCache,
	publisher EventPublisher,
	metrics Metrics,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		theaterRepo:        theaterRepo,
		unavailabilityRepo: unavailabilityRepo,
		txManager:          txManager,
		cache:              cache,
		publisher:          publisher,
		metrics:            metrics,
		timeProvider:       timeProvider,
		location:           location,
		logger:             logger,
	}
}

// Execute выполняет use case добавления недоступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCustomUnavailability: theater=%d, screen=%d, slots=%d, dates=%d",
		req.TheaterID, req.ScreenID, len(req.UnavailableSlots), len(req.UnavailableDates))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddCustomUnavailability: validation failed: %v", err)
		return nil, err
	}

	slots, days, err := buildWindows(req, uc.location)
	if err != nil {
		uc.logger.Warn("AddCustomUnavailability: invalid request data: %v", err)
		return nil, err
	}

	// 2. Проверяем кинотеатр
	if _, err := uc.theaterRepo.GetTheaterByID(ctx, req.TheaterID); err != nil {
		if errors.Is(err, theaterRepo.ErrTheaterNotFound) {
			uc.logger.Warn("AddCustomUnavailability: theater id=%d not found", req.TheaterID)
			return nil, ErrTheaterNotFound
		}
		uc.logger.Error("AddCustomUnavailability: failed to get theater id=%d: %v", req.TheaterID, err)
		return nil, fmt.Errorf("%w: failed to get theater: %v", ErrInternal, err)
	}

	// 3. Проверяем, что зал принадлежит кинотеатру
	if _, err := uc.theaterRepo.GetScreen(ctx, req.TheaterID, req.ScreenID); err != nil {
		if errors.Is(err, theaterRepo.ErrScreenNotFound) {
			uc.logger.Warn("AddCustomUnavailability: screen id=%d not found in theater id=%d", req.ScreenID, req.TheaterID)
			return nil, ErrScreenNotFound
		}
		uc.logger.Error("AddCustomUnavailability: failed to get screen id=%d: %v", req.ScreenID, err)
		return nil, fmt.Errorf("%w: failed to get screen: %v", ErrInternal, err)
	}

	// 4. Создаем все окна в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, u := range append(slots, days...) {
			if _, err := uc.unavailabilityRepo.Create(txCtx, u); err != nil {
				return fmt.Errorf("%w: create unavailability %s-%s: %v",
					ErrInternal, u.StartTime.Format(time.RFC3339), u.EndTime.Format(time.RFC3339), err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("AddCustomUnavailability: transaction failed for screen=%d: %v", req.ScreenID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	resp := &Response{
		ScreenID:     req.ScreenID,
		SlotsCreated: len(slots),
		DaysCreated:  len(days),
	}

	// 5. После фиксации: метрики, сброс кэша, события
	uc.metrics.ObserveUnavailabilityWritten(domain.UnavailabilityKindCustom, resp.SlotsCreated)
	uc.metrics.ObserveUnavailabilityWritten(domain.UnavailabilityKindFullDay, resp.DaysCreated)
	if resp.SlotsCreated+resp.DaysCreated > 0 {
		uc.notify(ctx, req.TheaterID, resp)
	}

	uc.logger.Info("AddCustomUnavailability: screen=%d, created slots=%d, full days=%d",
		req.ScreenID, resp.SlotsCreated, resp.DaysCreated)

	return resp, nil
}

// notify сбрасывает кэш зала и публикует по событию на каждый вид записей
// Данные уже зафиксированы, поэтому ошибки только логируются
func (uc *UseCase) notify(ctx context.Context, theaterID int64, resp *Response) {
	if err := uc.cache.Invalidate(ctx, resp.ScreenID); err != nil {
		uc.logger.Warn("AddCustomUnavailability: failed to invalidate slots cache for screen=%d: %v", resp.ScreenID, err)
	}

	now := uc.timeProvider.Now()
	counts := []struct {
		kind  string
		count int
	}{
		{kind: domain.UnavailabilityKindCustom, count: resp.SlotsCreated},
		{kind: domain.UnavailabilityKindFullDay, count: resp.DaysCreated},
	}

	for _, c := range counts {
		if c.count == 0 {
			continue
		}
		event := eventbus.NewAvailabilityChanged(theaterID, resp.ScreenID, c.kind, c.count, now)
		if err := uc.publisher.PublishAvailabilityChanged(ctx, event); err != nil {
			uc.logger.Warn("AddCustomUnavailability: failed to publish event id=%s: %v", event.ID, err)
		}
	}
}
