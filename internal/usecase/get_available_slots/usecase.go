package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
	slotsCache "github.com/m04kA/SMC-ScreenAvailability/internal/infra/cache/slots"
	theaterRepo "github.com/m04kA/SMC-ScreenAvailability/internal/infra/storage/theater"
)

const tracerName = "github.com/m04kA/SMC-ScreenAvailability/internal/usecase/get_available_slots"

// Результаты обращения к кэшу для метрик
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// UseCase use case получения слотов, не пересекающихся с недоступностью зала
type UseCase struct {
	theaterRepo        TheaterRepository
	unavailabilityRepo UnavailabilityRepository
	slotRepo           SlotRepository
	cache              SlotsCache
	metrics            Metrics
	location           *time.Location
	tracer             trace.Tracer
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
// Спаны пишутся через глобальный TracerProvider
func NewUseCase(
	theaterRepo TheaterRepository,
	unavailabilityRepo UnavailabilityRepository,
	slotRepo SlotRepository,
	cache SlotsCache,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		theaterRepo:        theaterRepo,
		unavailabilityRepo: unavailabilityRepo,
		slotRepo:           slotRepo,
		cache:              cache,
		metrics:            metrics,
		location:           location,
		tracer:             otel.Tracer(tracerName),
		logger:             logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: theater=%d, screen=%d, range=%s..%s",
		req.TheaterID, req.ScreenID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем кинотеатр и зал
	if err := uc.checkScreen(ctx, req.TheaterID, req.ScreenID); err != nil {
		return nil, err
	}

	// 3. Пробуем кэш; версия читается до запросов в БД
	version, slots, hit := uc.lookupCache(ctx, req)
	if hit {
		uc.logger.Info("GetAvailableSlots: cache hit for screen=%d, %d slots", req.ScreenID, len(slots))
		return uc.response(req, slots), nil
	}

	// Границы диапазона в зоне сервиса: [полночь startDate, полночь дня после endDate)
	rangeStart := domain.DayStart(req.StartDate, uc.location)
	rangeEnd := domain.NextDayStart(req.EndDate, uc.location)

	// 4. Окна недоступности, задевающие хотя бы один день диапазона
	windows, err := uc.gatherUnavailability(ctx, req.ScreenID, rangeStart, rangeEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get unavailability for screen=%d: %v", req.ScreenID, err)
		return nil, fmt.Errorf("%w: failed to get unavailability: %v", ErrInternal, err)
	}

	// 5. Слоты, целиком лежащие в диапазоне (конец - последняя микросекунда endDate)
	candidates, err := uc.gatherSlots(ctx, req.ScreenID, rangeStart, rangeEnd.Add(-time.Microsecond))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots for screen=%d: %v", req.ScreenID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 6. Исключаем слоты, пересекающиеся с любым окном
	available := uc.filter(ctx, candidates, windows)
	uc.metrics.ObserveSlotsFiltered(len(candidates), len(available))

	// 7. Сохраняем результат под прочитанной версией
	if err := uc.cache.Set(ctx, req.ScreenID, version, req.StartDate, req.EndDate, available); err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to cache slots for screen=%d: %v", req.ScreenID, err)
	}

	uc.logger.Info("GetAvailableSlots: screen=%d, windows=%d, candidates=%d, available=%d",
		req.ScreenID, len(windows), len(candidates), len(available))

	return uc.response(req, available), nil
}

func (uc *UseCase) checkScreen(ctx context.Context, theaterID, screenID int64) error {
	if _, err := uc.theaterRepo.GetTheaterByID(ctx, theaterID); err != nil {
		if errors.Is(err, theaterRepo.ErrTheaterNotFound) {
			uc.logger.Warn("GetAvailableSlots: theater id=%d not found", theaterID)
			return ErrTheaterNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get theater id=%d: %v", theaterID, err)
		return fmt.Errorf("%w: failed to get theater: %v", ErrInternal, err)
	}

	if _, err := uc.theaterRepo.GetScreen(ctx, theaterID, screenID); err != nil {
		if errors.Is(err, theaterRepo.ErrScreenNotFound) {
			uc.logger.Warn("GetAvailableSlots: screen id=%d not found in theater id=%d", screenID, theaterID)
			return ErrScreenNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get screen id=%d: %v", screenID, err)
		return fmt.Errorf("%w: failed to get screen: %v", ErrInternal, err)
	}

	return nil
}

// lookupCache возвращает версию зала и, при попадании, закэшированные слоты
// Ошибки кэша не прерывают запрос
func (uc *UseCase) lookupCache(ctx context.Context, req *Request) (int64, []*domain.Slot, bool) {
	version, err := uc.cache.Version(ctx, req.ScreenID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to read cache version for screen=%d: %v", req.ScreenID, err)
		uc.metrics.ObserveCacheLookup(cacheError)
		return 0, nil, false
	}

	slots, err := uc.cache.Get(ctx, req.ScreenID, version, req.StartDate, req.EndDate)
	switch {
	case err == nil:
		uc.metrics.ObserveCacheLookup(cacheHit)
		return version, slots, true
	case errors.Is(err, slotsCache.ErrCacheMiss):
		uc.metrics.ObserveCacheLookup(cacheMiss)
	default:
		uc.logger.Warn("GetAvailableSlots: failed to read cache for screen=%d: %v", req.ScreenID, err)
		uc.metrics.ObserveCacheLookup(cacheError)
	}

	return version, nil, false
}

func (uc *UseCase) gatherUnavailability(ctx context.Context, screenID int64, from, before time.Time) ([]*domain.Unavailability, error) {
	ctx, span := uc.tracer.Start(ctx, "gather_unavailability", trace.WithAttributes(
		attribute.Int64("screen.id", screenID),
		attribute.String("range.from", from.Format(time.RFC3339)),
		attribute.String("range.before", before.Format(time.RFC3339)),
	))
	defer span.End()

	windows, err := uc.unavailabilityRepo.GetByScreen(ctx, domain.UnavailabilityFilter{
		ScreenID: screenID,
		From:     &from,
		Before:   &before,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get unavailability")
		return nil, err
	}

	span.SetAttributes(attribute.Int("unavailability.count", len(windows)))
	return windows, nil
}

func (uc *UseCase) gatherSlots(ctx context.Context, screenID int64, from, to time.Time) ([]*domain.Slot, error) {
	ctx, span := uc.tracer.Start(ctx, "gather_slots", trace.WithAttributes(
		attribute.Int64("screen.id", screenID),
	))
	defer span.End()

	slots, err := uc.slotRepo.GetByScreenWithin(ctx, screenID, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get slots")
		return nil, err
	}

	span.SetAttributes(attribute.Int("slots.count", len(slots)))
	return slots, nil
}

func (uc *UseCase) filter(ctx context.Context, slots []*domain.Slot, windows []*domain.Unavailability) []*domain.Slot {
	_, span := uc.tracer.Start(ctx, "filter_slots")
	defer span.End()

	available := filterAvailableSlots(slots, windows)

	span.SetAttributes(
		attribute.Int("slots.candidates", len(slots)),
		attribute.Int("slots.available", len(available)),
	)
	return available
}

func (uc *UseCase) response(req *Request, slots []*domain.Slot) *Response {
	return &Response{
		ScreenID:  req.ScreenID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Slots:     slots,
	}
}
