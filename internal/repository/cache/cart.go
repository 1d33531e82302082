// Package cache хранит гостевые корзины в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shopvely/internal/cart"
	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// GuestCartStore реализует cart.Store поверх Redis.
// Каждая запись продлевает срок жизни корзины на ttl.
type GuestCartStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewGuestCartStore создает новый GuestCartStore
func NewGuestCartStore(client redis.Cmdable, ttl time.Duration) *GuestCartStore {
	return &GuestCartStore{
		client: client,
		ttl:    ttl,
	}
}

func key(owner cart.Owner) string {
	return keyPrefix + owner.String()
}

// Load получает корзину. Отсутствующая или истекшая корзина считается пустой.
func (s *GuestCartStore) Load(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, key(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: failed to load cart of %s: %w", owner, err)
	}

	c := cart.New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("cache: failed to decode cart of %s: %w", owner, err)
	}
	if c.Items == nil {
		c.Items = []cart.Item{}
	}

	return c, nil
}

// Save сохраняет корзину целиком
func (s *GuestCartStore) Save(ctx context.Context, owner cart.Owner, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cache: failed to encode cart of %s: %w", owner, err)
	}

	if err := s.client.Set(ctx, key(owner), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to save cart of %s: %w", owner, err)
	}

	return nil
}

// Delete удаляет корзину
func (s *GuestCartStore) Delete(ctx context.Context, owner cart.Owner) error {
	if err := s.client.Del(ctx, key(owner)).Err(); err != nil {
		return fmt.Errorf("cache: failed to delete cart of %s: %w", owner, err)
	}
	return nil
}
