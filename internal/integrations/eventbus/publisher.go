package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// channel часть *amqp.Channel, которая нужна издателю
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события в очередь RabbitMQ через default exchange
// Канал AMQP не потокобезопасен, поэтому публикации сериализуются мьютексом
type Publisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     channel
	queue  string
	closed bool
	log    Logger
}

// NewPublisher подключается к брокеру и объявляет durable очередь queue
func NewPublisher(url, queue string, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare queue %q: %v", ErrConnect, queue, err)
	}

	log.Info("eventbus: connected, publishing to queue=%s", queue)

	return &Publisher{conn: conn, ch: ch, queue: queue, log: log}, nil
}

// PublishAvailabilityChanged публикует событие как persistent JSON сообщение
func (p *Publisher) PublishAvailabilityChanged(ctx context.Context, event AvailabilityChanged) error {
	msg, err := buildPublishing(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: event id=%s: %v", ErrPublish, event.ID, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.ch.Close(); err != nil {
		p.log.Warn("eventbus: close channel: %v", err)
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func buildPublishing(event AvailabilityChanged) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         "availability.changed",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}, nil
}

// NoopPublisher используется, когда RabbitMQ выключен в конфигурации
type NoopPublisher struct{}

// PublishAvailabilityChanged ничего не делает
func (NoopPublisher) PublishAvailabilityChanged(context.Context, AvailabilityChanged) error {
	return nil
}
