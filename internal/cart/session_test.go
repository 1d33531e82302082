package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore хранит корзины в памяти и может имитировать сбой записи
type memoryStore struct {
	carts   map[string]*Cart
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: make(map[string]*Cart)}
}

func (s *memoryStore) Load(_ context.Context, owner Owner) (*Cart, error) {
	if c, ok := s.carts[owner.String()]; ok {
		return c.Clone(), nil
	}
	return New(), nil
}

func (s *memoryStore) Save(_ context.Context, owner Owner, c *Cart) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.carts[owner.String()] = c.Clone()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, owner Owner) error {
	delete(s.carts, owner.String())
	return nil
}

func TestSession_Do(t *testing.T) {
	ctx := context.Background()
	owner := GuestOwner("guest-1")
	productID := uuid.New()
	now := time.Now()

	t.Run("Success persists cart", func(t *testing.T) {
		store := newMemoryStore()
		session := NewSession(owner, store, nil)

		err := session.Do(ctx, AddItem(Item{ProductID: productID, Price: dec("1000"), Quantity: 1}))
		require.NoError(t, err)

		saved, _ := store.Load(ctx, owner)
		assert.Len(t, saved.Items, 1)
	})

	t.Run("Store failure restores snapshot", func(t *testing.T) {
		store := newMemoryStore()
		session := NewSession(owner, store, nil)
		require.NoError(t, session.Do(ctx, AddItem(Item{ProductID: productID, Price: dec("1000"), Quantity: 1})))

		store.saveErr = errors.New("connection reset")
		err := session.Do(ctx, AddItem(Item{ProductID: uuid.New(), Price: dec("200"), Quantity: 3}))
		assert.ErrorIs(t, err, ErrSyncFailed)

		require.Len(t, session.Cart().Items, 1)
		assert.True(t, session.Cart().Subtotal().Equal(dec("1000")))
	})

	t.Run("Failed coupon keeps previous discount", func(t *testing.T) {
		store := newMemoryStore()
		session := NewSession(owner, store, nil)
		require.NoError(t, session.Do(ctx, AddItem(Item{ProductID: productID, Price: dec("1000"), Quantity: 1})))

		valid := &domain.Coupon{Code: "SAVE10", Percentage: dec("10"), ExpiryDate: now.AddDate(0, 0, 7), IsActive: true}
		require.NoError(t, session.Do(ctx, ApplyCoupon(valid, now)))

		foreign := &domain.Coupon{
			Code: "OTHER", Percentage: dec("50"), ExpiryDate: now.AddDate(0, 0, 7), IsActive: true,
			ProductIDs: []uuid.UUID{uuid.New()},
		}
		err := session.Do(ctx, ApplyCoupon(foreign, now))
		assert.ErrorIs(t, err, domain.ErrCouponNotApplicable)
		assert.Equal(t, "SAVE10", session.Cart().AppliedCoupon)
		assert.True(t, session.Cart().Discount.Equal(dec("100")))
		assert.Equal(t, 2, store.saves)
	})

	t.Run("New coupon replaces discount", func(t *testing.T) {
		store := newMemoryStore()
		session := NewSession(owner, store, nil)
		require.NoError(t, session.Do(ctx, AddItem(Item{ProductID: productID, Price: dec("1000"), Quantity: 1})))

		first := &domain.Coupon{Code: "SAVE10", Percentage: dec("10"), ExpiryDate: now, IsActive: true}
		second := &domain.Coupon{Code: "SAVE25", Percentage: dec("25"), ExpiryDate: now, IsActive: true}
		require.NoError(t, session.Do(ctx, ApplyCoupon(first, now)))
		require.NoError(t, session.Do(ctx, ApplyCoupon(second, now)))

		assert.Equal(t, "SAVE25", session.Cart().AppliedCoupon)
		assert.True(t, session.Cart().Discount.Equal(dec("250")))
		assert.True(t, session.Cart().Payable().Equal(dec("750")))
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		store := newMemoryStore()
		session := NewSession(owner, store, nil)

		err := session.Do(ctx, AddItem(Item{ProductID: productID, Price: dec("10"), Quantity: 0}))
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Zero(t, store.saves)
	})
}

func TestOwner_String(t *testing.T) {
	id := uuid.MustParse("6f1c2d7e-1a2b-4c3d-9e8f-0a1b2c3d4e5f")

	assert.Equal(t, "user:6f1c2d7e-1a2b-4c3d-9e8f-0a1b2c3d4e5f", UserOwner(id).String())
	assert.Equal(t, "guest:abc", GuestOwner("abc").String())
	assert.True(t, GuestOwner("abc").IsGuest())
}
