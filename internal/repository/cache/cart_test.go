package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/avc/shopvely/internal/cart"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestCartStore_Load(t *testing.T) {
	ctx := context.Background()
	owner := cart.GuestOwner("guest-42")

	t.Run("Missing cart is empty", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewGuestCartStore(db, time.Hour)

		mock.ExpectGet("cart:guest:guest-42").RedisNil()

		c, err := store.Load(ctx, owner)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Stored cart", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewGuestCartStore(db, time.Hour)

		stored := cart.New()
		stored.Add(cart.Item{ProductID: uuid.New(), Name: "Lungi", Price: decimal.NewFromInt(450), Quantity: 3})
		stored.SetCoupon("SAVE10", decimal.RequireFromString("135"))
		data, err := json.Marshal(stored)
		require.NoError(t, err)

		mock.ExpectGet("cart:guest:guest-42").SetVal(string(data))

		c, err := store.Load(ctx, owner)
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, "SAVE10", c.AppliedCoupon)
		assert.True(t, decimal.NewFromInt(1215).Equal(c.Payable()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewGuestCartStore(db, time.Hour)

		mock.ExpectGet("cart:guest:guest-42").SetErr(errors.New("connection refused"))

		_, err := store.Load(ctx, owner)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuestCartStore_Save(t *testing.T) {
	ctx := context.Background()
	owner := cart.GuestOwner("guest-42")
	ttl := 168 * time.Hour

	c := cart.New()
	c.Add(cart.Item{ProductID: uuid.New(), Name: "Gamcha", Price: decimal.NewFromInt(200), Quantity: 1})
	data, err := json.Marshal(c)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewGuestCartStore(db, ttl)

		mock.ExpectSet("cart:guest:guest-42", data, ttl).SetVal("OK")

		require.NoError(t, store.Save(ctx, owner, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := NewGuestCartStore(db, ttl)

		mock.ExpectSet("cart:guest:guest-42", data, ttl).SetErr(errors.New("READONLY"))

		assert.Error(t, store.Save(ctx, owner, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGuestCartStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewGuestCartStore(db, time.Hour)

	mock.ExpectDel("cart:guest:guest-42").SetVal(1)

	require.NoError(t, store.Delete(context.Background(), cart.GuestOwner("guest-42")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
