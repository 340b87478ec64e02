package slots

import "errors"

var (
	// ErrCacheMiss возвращается, когда в кэше нет записи для запроса
	ErrCacheMiss = errors.New("slots.cache: cache miss")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("slots.cache: redis error")

	// ErrDecode возвращается, когда запись в кэше не удалось разобрать
	ErrDecode = errors.New("slots.cache: failed to decode entry")
)
