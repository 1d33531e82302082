package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shopvely/internal/cart"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var errGuestCart = errors.New("repository: guest carts are not stored in postgres")

// CartStore хранит корзины зарегистрированных пользователей.
// Реализует cart.Store.
type CartStore struct {
	db DBTX
}

// NewCartStore создает новый CartStore
func NewCartStore(db DBTX) *CartStore {
	return &CartStore{db: db}
}

// Load получает корзину пользователя. Отсутствующая корзина считается пустой.
func (s *CartStore) Load(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	if owner.IsGuest() {
		return nil, errGuestCart
	}

	c := cart.New()
	var cartID uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT id, coupon_code, discount FROM carts WHERE user_id = $1`,
		*owner.UserID,
	).Scan(&cartID, &c.AppliedCoupon, &c.Discount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c, nil
		}
		return nil, fmt.Errorf("repository: failed to load cart of %s: %w", owner, err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT product_id, name, price, quantity, selected_size
		 FROM cart_items
		 WHERE cart_id = $1
		 ORDER BY position`,
		cartID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to load cart items of %s: %w", owner, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item cart.Item
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.SelectedSize); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cart item: %w", err)
		}
		c.Items = append(c.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cart items: %w", err)
	}

	return c, nil
}

// Save полностью перезаписывает корзину пользователя
func (s *CartStore) Save(ctx context.Context, owner cart.Owner, c *cart.Cart) error {
	if owner.IsGuest() {
		return errGuestCart
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin cart transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var cartID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO carts (user_id, coupon_code, discount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET coupon_code = EXCLUDED.coupon_code, discount = EXCLUDED.discount, updated_at = NOW()
		 RETURNING id`,
		*owner.UserID, c.AppliedCoupon, c.Discount,
	).Scan(&cartID)
	if err != nil {
		return fmt.Errorf("repository: failed to upsert cart of %s: %w", owner, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("repository: failed to clear cart items of %s: %w", owner, err)
	}

	for position, item := range c.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO cart_items (cart_id, position, product_id, name, price, quantity, selected_size)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			cartID, position, item.ProductID, item.Name, item.Price, item.Quantity, item.SelectedSize,
		)
		if err != nil {
			return fmt.Errorf("repository: failed to insert cart item of %s: %w", owner, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit cart of %s: %w", owner, err)
	}

	return nil
}

// Delete удаляет корзину пользователя вместе с позициями
func (s *CartStore) Delete(ctx context.Context, owner cart.Owner) error {
	if owner.IsGuest() {
		return errGuestCart
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, *owner.UserID); err != nil {
		return fmt.Errorf("repository: failed to delete cart of %s: %w", owner, err)
	}

	return nil
}
