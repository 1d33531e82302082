// Package events связывает сервис с брокерами сообщений: принимает статусы заказов
// из Kafka и публикует события кошелька в RabbitMQ.
package events

import (
	"context"

	"github.com/avc/shopvely/internal/domain"
)

// NoopPublisher используется, когда брокер событий не настроен
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, domain.LoyaltyEvent) error {
	return nil
}
