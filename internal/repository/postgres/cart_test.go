package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/shopvely/internal/cart"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCartStore(mock)
	ctx := context.Background()
	userID := uuid.New()
	owner := cart.UserOwner(userID)

	t.Run("Stored cart", func(t *testing.T) {
		cartID := uuid.New()
		productID := uuid.New()

		mock.ExpectQuery(`SELECT id, coupon_code, discount FROM carts WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "coupon_code", "discount"}).
				AddRow(cartID, "EID25", decimal.NewFromInt(250)))
		mock.ExpectQuery(`FROM cart_items WHERE cart_id = \$1 ORDER BY position`).
			WithArgs(cartID).
			WillReturnRows(pgxmock.NewRows([]string{"product_id", "name", "price", "quantity", "selected_size"}).
				AddRow(productID, "Panjabi", decimal.NewFromInt(1000), 1, "M"))

		c, err := store.Load(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "EID25", c.AppliedCoupon)
		require.Len(t, c.Items, 1)
		assert.Equal(t, productID, c.Items[0].ProductID)
		assert.True(t, decimal.NewFromInt(750).Equal(c.Payable()))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No cart yet", func(t *testing.T) {
		mock.ExpectQuery(`FROM carts`).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)

		c, err := store.Load(ctx, owner)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Guest owner rejected", func(t *testing.T) {
		_, err := store.Load(ctx, cart.GuestOwner("g-1"))
		assert.Error(t, err)
	})
}

func TestCartStore_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCartStore(mock)
	ctx := context.Background()
	userID := uuid.New()
	owner := cart.UserOwner(userID)

	c := cart.New()
	c.Add(cart.Item{ProductID: uuid.New(), Name: "Kurti", Price: decimal.NewFromInt(800), Quantity: 2})
	c.Add(cart.Item{ProductID: uuid.New(), Name: "Scarf", Price: decimal.NewFromInt(300), Quantity: 1})

	t.Run("Success", func(t *testing.T) {
		cartID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO carts (.+) ON CONFLICT \(user_id\) DO UPDATE`).
			WithArgs(userID, "", c.Discount).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectExec(`DELETE FROM cart_items WHERE cart_id = \$1`).
			WithArgs(cartID).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		for i, item := range c.Items {
			mock.ExpectExec(`INSERT INTO cart_items`).
				WithArgs(cartID, i, item.ProductID, item.Name, item.Price, item.Quantity, item.SelectedSize).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()

		require.NoError(t, store.Save(ctx, owner, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert fails", func(t *testing.T) {
		cartID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO carts`).
			WithArgs(userID, "", c.Discount).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cartID))
		mock.ExpectExec(`DELETE FROM cart_items`).
			WithArgs(cartID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(`INSERT INTO cart_items`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		assert.Error(t, store.Save(ctx, owner, c))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartStore_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	store := NewCartStore(mock)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM carts WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Delete(context.Background(), cart.UserOwner(userID)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
