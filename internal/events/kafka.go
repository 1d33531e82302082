package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader читает сообщения из топика. Реализуется *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// NewKafkaReader создает reader группы потребителей для топика статусов заказов
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}

// Пауза перед повторным чтением после ошибки брокера, удваивается до maxReadBackoff
const (
	minReadBackoff = 500 * time.Millisecond
	maxReadBackoff = 30 * time.Second
)

type orderStatusMessage struct {
	OrderID uuid.UUID          `json:"order_id"`
	Status  domain.OrderStatus `json:"status"`
}

// OrderStatusConsumer применяет статусы заказов, пришедшие от внешней системы.
// Сообщения обрабатываются по одному, поэтому статусы одного заказа применяются в порядке партиции.
type OrderStatusConsumer struct {
	reader  MessageReader
	orders  domain.OrderService
	logger  *zap.Logger
	backoff time.Duration
}

// NewOrderStatusConsumer создает новый OrderStatusConsumer
func NewOrderStatusConsumer(reader MessageReader, orders domain.OrderService, logger *zap.Logger) *OrderStatusConsumer {
	return &OrderStatusConsumer{
		reader:  reader,
		orders:  orders,
		logger:  logger,
		backoff: minReadBackoff,
	}
}

// Run читает сообщения до отмены контекста.
// Ошибки чтения не останавливают потребителя: он ждет и читает снова.
func (c *OrderStatusConsumer) Run(ctx context.Context) error {
	c.logger.Info("order status consumer started")
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Warn("failed to close kafka reader", zap.Error(err))
		}
		c.logger.Info("order status consumer stopped")
	}()

	delay := c.backoff
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			c.logger.Error("failed to read order status",
				zap.Duration("retry_in", delay),
				zap.Error(err),
			)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}

			delay = min(delay*2, maxReadBackoff)
			continue
		}

		delay = c.backoff
		c.handle(ctx, msg)
	}
}

// handle применяет одно сообщение. Ошибки логируются: повторная доставка
// того же статуса безопасна, а битое сообщение повторять бессмысленно.
func (c *OrderStatusConsumer) handle(ctx context.Context, msg kafka.Message) {
	var payload orderStatusMessage
	if err := json.Unmarshal(msg.Value, &payload); err != nil || payload.OrderID == uuid.Nil {
		c.logger.Warn("skipping malformed order status message",
			zap.Int64("offset", msg.Offset),
			zap.ByteString("value", msg.Value),
		)
		return
	}

	change, err := c.orders.UpdateStatus(ctx, payload.OrderID, payload.Status)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrOrderAlreadyComplete):
		c.logger.Info("order already complete, message ignored",
			zap.String("order_id", payload.OrderID.String()),
		)
		return
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrInvalidOrderStatus),
		errors.Is(err, domain.ErrInvalidStatusTransition):
		c.logger.Warn("order status message rejected",
			zap.String("order_id", payload.OrderID.String()),
			zap.String("status", string(payload.Status)),
			zap.Error(err),
		)
		return
	default:
		c.logger.Error("failed to apply order status",
			zap.String("order_id", payload.OrderID.String()),
			zap.String("status", string(payload.Status)),
			zap.Error(err),
		)
		return
	}

	if change.LoyaltyError != "" {
		c.logger.Warn("order completed without commission, left for settlement worker",
			zap.String("order_id", payload.OrderID.String()),
		)
	}
}
