package eventbus

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру или объявить очередь
	ErrConnect = errors.New("eventbus: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("eventbus: failed to publish event")

	// ErrClosed возвращается при публикации после закрытия издателя
	ErrClosed = errors.New("eventbus: publisher is closed")
)
