package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScreenAvailability/internal/domain"
)

const keyPrefix = "screen_availability:slots"

// Cache кэш списков доступных слотов в Redis
//
// Ключ записи содержит версию зала. Любая запись в расписание или недоступность
// увеличивает версию, и старые записи перестают читаться, истекая по TTL
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

type cachedSlot struct {
	ID        int64     `json:"id"`
	ScreenID  int64     `json:"screen_id"`
	Movie     string    `json:"movie"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Version возвращает текущую версию зала (0, если зал еще не менялся)
func (c *Cache) Version(ctx context.Context, screenID int64) (int64, error) {
	version, err := c.rdb.Get(ctx, versionKey(screenID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get version screen=%d: %v", ErrRedis, screenID, err)
	}
	return version, nil
}

// Get возвращает закэшированный список слотов для версии зала и диапазона дат
func (c *Cache) Get(ctx context.Context, screenID, version int64, startDate, endDate time.Time) ([]*domain.Slot, error) {
	raw, err := c.rdb.Get(ctx, entryKey(screenID, version, startDate, endDate)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get entry screen=%d: %v", ErrRedis, screenID, err)
	}

	var cached []cachedSlot
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	result := make([]*domain.Slot, 0, len(cached))
	for _, s := range cached {
		result = append(result, &domain.Slot{
			ID:        s.ID,
			ScreenID:  s.ScreenID,
			Movie:     s.Movie,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return result, nil
}

// Set сохраняет список слотов под версией, прочитанной до запроса в БД
func (c *Cache) Set(ctx context.Context, screenID, version int64, startDate, endDate time.Time, slots []*domain.Slot) error {
	cached := make([]cachedSlot, 0, len(slots))
	for _, s := range slots {
		cached = append(cached, cachedSlot{
			ID:        s.ID,
			ScreenID:  s.ScreenID,
			Movie:     s.Movie,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: encode entry: %v", ErrDecode, err)
	}

	if err := c.rdb.Set(ctx, entryKey(screenID, version, startDate, endDate), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set entry screen=%d: %v", ErrRedis, screenID, err)
	}
	return nil
}

// Invalidate увеличивает версию зала, делая все его записи недоступными
func (c *Cache) Invalidate(ctx context.Context, screenID int64) error {
	if err := c.rdb.Incr(ctx, versionKey(screenID)).Err(); err != nil {
		return fmt.Errorf("%w: incr version screen=%d: %v", ErrRedis, screenID, err)
	}
	return nil
}

func versionKey(screenID int64) string {
	return fmt.Sprintf("%s:%d:version", keyPrefix, screenID)
}

func entryKey(screenID, version int64, startDate, endDate time.Time) string {
	return fmt.Sprintf("%s:%d:v%d:%s:%s", keyPrefix, screenID, version,
		startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
}

// Noop кэш-заглушка, когда Redis выключен: всегда промах
type Noop struct{}

// Version всегда 0
func (Noop) Version(context.Context, int64) (int64, error) { return 0, nil }

// Get всегда возвращает ErrCacheMiss
func (Noop) Get(context.Context, int64, int64, time.Time, time.Time) ([]*domain.Slot, error) {
	return nil, ErrCacheMiss
}

// Set ничего не делает
func (Noop) Set(context.Context, int64, int64, time.Time, time.Time, []*domain.Slot) error {
	return nil
}

// Invalidate ничего не делает
func (Noop) Invalidate(context.Context, int64) error { return nil }
