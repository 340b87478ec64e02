package configure_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	theaterRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
	unavailabilityRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/unavailability"
	"github.com/m04kA/SMC-ScreenAvailability/internal/integrations/eventbus"
)

// UseCase use case настройки недельного расписания и недельной недоступности зала
type UseCase struct {
	theaterRepo        TheaterRepository
	scheduleRepo       ScheduleRepository
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
// location - зона, в которой время суток из запроса превращается в абсолютное время
func NewUseCase(
	theaterRepo TheaterRepository,
	scheduleRepo ScheduleRepository,
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
		scheduleRepo:       scheduleRepo,
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

// Execute применяет часы работы и окна недоступности из запроса
//
// Все данные разбираются до первой записи. Записи выполняются в одной транзакции:
// любая ошибка (в том числе неоднозначное расписание на одном из дней) откатывает весь запрос
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfigureAvailability: theater=%d, screen=%s, schedule_days=%d, unavailability_days=%d",
		req.TheaterID, req.ScreenRef(), len(req.WeeklySchedule), len(req.WeeklyUnavailability))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfigureAvailability: validation failed: %v", err)
		return nil, err
	}

	schedule, err := parseWeeklySchedule(req.WeeklySchedule)
	if err != nil {
		uc.logger.Warn("ConfigureAvailability: invalid weekly schedule: %v", err)
		return nil, err
	}

	windows, err := parseWeeklyUnavailability(req.WeeklyUnavailability)
	if err != nil {
		uc.logger.Warn("ConfigureAvailability: invalid weekly unavailability: %v", err)
		return nil, err
	}

	// 2. Проверяем кинотеатр и определяем зал
	screen, err := uc.resolveScreen(ctx, req.TheaterID, req.ScreenID)
	if err != nil {
		return nil, err
	}

	// 3. Окна недоступности привязываются к дате вызова
	anchor := uc.timeProvider.Now().In(uc.location)

	resp := &Response{ScreenID: screen.ID}

	// 4. Выполняем все записи в одной сериализуемой транзакции:
	// параллельный запрос с теми же окнами не сможет вставить дубликат
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Сводим часы работы: не больше одной записи на день недели
		for _, h := range schedule {
			created, err := uc.reconcileDay(txCtx, screen.ID, h)
			if err != nil {
				return err
			}
			if created {
				resp.SchedulesCreated++
			} else {
				resp.SchedulesUpdated++
			}
		}

		// 4.2. Добавляем окна недоступности, которых еще нет
		for _, w := range windows {
			created, err := uc.upsertWindow(txCtx, screen.ID, w, anchor)
			if err != nil {
				return err
			}
			if created {
				resp.UnavailabilityCreated++
			} else {
				resp.UnavailabilityUnchanged++
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAmbiguousSchedule) {
			uc.logger.Warn("ConfigureAvailability: screen=%d: %v", screen.ID, err)
			return nil, err
		}
		uc.logger.Error("ConfigureAvailability: transaction failed for screen=%d: %v", screen.ID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 5. После фиксации: метрики, сброс кэша, событие
	uc.metrics.ObserveUnavailabilityWritten(domain.UnavailabilityKindWeekly, resp.UnavailabilityCreated)
	if resp.Changed() {
		uc.notify(ctx, req.TheaterID, screen.ID, resp)
	}

	uc.logger.Info("ConfigureAvailability: screen=%d, schedules created=%d updated=%d, unavailability created=%d unchanged=%d",
		screen.ID, resp.SchedulesCreated, resp.SchedulesUpdated, resp.UnavailabilityCreated, resp.UnavailabilityUnchanged)

	return resp, nil
}

// reconcileDay создает или обновляет запись расписания на день
// Возвращает true, если запись создана
func (uc *UseCase) reconcileDay(ctx context.Context, screenID int64, h dayHours) (bool, error) {
	existing, err := uc.scheduleRepo.GetByScreenAndDay(ctx, screenID, h.day)
	if err != nil {
		return false, fmt.Errorf("%w: get schedule for %s: %v", ErrInternal, h.day, err)
	}

	switch len(existing) {
	case 0:
		_, err := uc.scheduleRepo.Create(ctx, &domain.WeeklySchedule{
			ScreenID:  screenID,
			DayOfWeek: h.day,
			OpenTime:  h.openTime,
			CloseTime: h.closeTime,
		})
		if err != nil {
			return false, fmt.Errorf("%w: create schedule for %s: %v", ErrInternal, h.day, err)
		}
		return true, nil
	case 1:
		if err := uc.scheduleRepo.UpdateHours(ctx, existing[0].ID, h.openTime, h.closeTime); err != nil {
			return false, fmt.Errorf("%w: update schedule id=%d: %v", ErrInternal, existing[0].ID, err)
		}
		return false, nil
	default:
		return false, fmt.Errorf("%w: day=%s, found %d records", ErrAmbiguousSchedule, h.day, len(existing))
	}
}

// upsertWindow создает окно недоступности, если окна с такими же границами еще нет
// Возвращает true, если окно создано
func (uc *UseCase) upsertWindow(ctx context.Context, screenID int64, w dayWindow, anchor time.Time) (bool, error) {
	start := w.start.On(anchor, uc.location)
	end := w.end.On(anchor, uc.location)

	_, err := uc.unavailabilityRepo.FindByKey(ctx, screenID, start, end)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, unavailabilityRepo.ErrUnavailabilityNotFound) {
		return false, fmt.Errorf("%w: find unavailability for %s: %v", ErrInternal, w.day, err)
	}

	_, err = uc.unavailabilityRepo.Create(ctx, &domain.Unavailability{
		ScreenID:  screenID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		return false, fmt.Errorf("%w: create unavailability for %s: %v", ErrInternal, w.day, err)
	}
	return true, nil
}

// resolveScreen проверяет кинотеатр и возвращает указанный зал или первый зал кинотеатра
func (uc *UseCase) resolveScreen(ctx context.Context, theaterID int64, screenID *int64) (*domain.Screen, error) {
	if _, err := uc.theaterRepo.GetTheaterByID(ctx, theaterID); err != nil {
		if errors.Is(err, theaterRepo.ErrTheaterNotFound) {
			uc.logger.Warn("ConfigureAvailability: theater id=%d not found", theaterID)
			return nil, ErrTheaterNotFound
		}
		uc.logger.Error("ConfigureAvailability: failed to get theater id=%d: %v", theaterID, err)
		return nil, fmt.Errorf("%w: failed to get theater: %v", ErrInternal, err)
	}

	if screenID == nil {
		screen, err := uc.theaterRepo.GetFirstScreen(ctx, theaterID)
		if err != nil {
			if errors.Is(err, theaterRepo.ErrScreenNotFound) {
				uc.logger.Warn("ConfigureAvailability: theater id=%d has no screens", theaterID)
				return nil, ErrNoScreens
			}
			uc.logger.Error("ConfigureAvailability: failed to get first screen of theater id=%d: %v", theaterID, err)
			return nil, fmt.Errorf("%w: failed to get screen: %v", ErrInternal, err)
		}
		return screen, nil
	}

	screen, err := uc.theaterRepo.GetScreen(ctx, theaterID, *screenID)
	if err != nil {
		if errors.Is(err, theaterRepo.ErrScreenNotFound) {
			uc.logger.Warn("ConfigureAvailability: screen id=%d not found in theater id=%d", *screenID, theaterID)
			return nil, ErrScreenNotFound
		}
		uc.logger.Error("ConfigureAvailability: failed to get screen id=%d: %v", *screenID, err)
		return nil, fmt.Errorf("%w: failed to get screen: %v", ErrInternal, err)
	}

	return screen, nil
}

// notify сбрасывает кэш зала и публикует событие
// Данные уже зафиксированы, поэтому ошибки только логируются
func (uc *UseCase) notify(ctx context.Context, theaterID, screenID int64, resp *Response) {
	if err := uc.cache.Invalidate(ctx, screenID); err != nil {
		uc.logger.Warn("ConfigureAvailability: failed to invalidate slots cache for screen=%d: %v", screenID, err)
	}

	count := resp.SchedulesCreated + resp.SchedulesUpdated + resp.UnavailabilityCreated
	event := eventbus.NewAvailabilityChanged(theaterID, screenID, domain.UnavailabilityKindWeekly, count, uc.timeProvider.Now())
	if err := uc.publisher.PublishAvailabilityChanged(ctx, event); err != nil {
		uc.logger.Warn("ConfigureAvailability: failed to publish event id=%s: %v", event.ID, err)
	}
}
