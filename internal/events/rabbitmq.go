package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/avc/shopvely/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel публикует сообщения. Реализуется *amqp.Channel.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher реализует domain.EventPublisher поверх очереди RabbitMQ
type RabbitPublisher struct {
	conn  *amqp.Connection
	mu    sync.Mutex
	ch    Channel
	queue string
}

// NewRabbitPublisher подключается к брокеру и объявляет durable очередь
func NewRabbitPublisher(url, queue string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: failed to declare queue %q: %w", queue, err)
	}

	publisher := NewChannelPublisher(ch, queue)
	publisher.conn = conn
	return publisher, nil
}

// NewChannelPublisher создает публикатор поверх уже открытого канала
func NewChannelPublisher(ch Channel, queue string) *RabbitPublisher {
	return &RabbitPublisher{ch: ch, queue: queue}
}

// Publish отправляет событие в очередь в формате JSON
func (p *RabbitPublisher) Publish(ctx context.Context, event domain.LoyaltyEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: failed to encode %s event: %w", event.Type, err)
	}

	// Канал amqp не рассчитан на одновременную публикацию из нескольких горутин
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("events: failed to publish %s event: %w", event.Type, err)
	}

	return nil
}

// Close закрывает канал и соединение
func (p *RabbitPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
