package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumnNames = []string{
	"id", "customer_id", "customer_name", "status", "subtotal", "discount", "shipping_fee", "total",
	"coupon_code", "shipping_address", "payment_method", "transaction_id",
	"commission_settled_at", "created_at", "updated_at",
}

func orderRows(orders ...*domain.Order) *pgxmock.Rows {
	rows := pgxmock.NewRows(orderColumnNames)
	for _, o := range orders {
		rows.AddRow(
			o.ID, o.CustomerID, o.CustomerName, o.Status, o.Subtotal, o.Discount, o.ShippingFee, o.Total,
			o.CouponCode, o.ShippingAddress, o.PaymentMethod, o.TransactionID,
			o.CommissionSettledAt, o.CreatedAt, o.UpdatedAt,
		)
	}
	return rows
}

func sampleOrder(customerID *uuid.UUID) *domain.Order {
	productID := uuid.New()
	return &domain.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		CustomerName: "Rahim Uddin",
		Status:       domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductID: &productID, Name: "Panjabi", Price: decimal.NewFromInt(1000), Quantity: 2, SelectedSize: "L"},
		},
		Subtotal:    decimal.NewFromInt(2000),
		Discount:    decimal.Zero,
		ShippingFee: decimal.NewFromInt(100),
		Total:       decimal.NewFromInt(2100),
		ShippingAddress: domain.ShippingAddress{
			Name: "Rahim Uddin", Phone: "01712345678", Address: "House 12", City: "Dhaka", Village: "Mirpur", PostalCode: "1216",
		},
		PaymentMethod: domain.PaymentMethodCOD,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		order := sampleOrder(&customerID)
		item := order.Items[0]

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.CustomerID, order.CustomerName, order.Status, order.Subtotal, order.Discount,
				order.ShippingFee, order.Total, order.CouponCode, order.ShippingAddress, order.PaymentMethod, order.TransactionID).
			WillReturnRows(orderRows(order))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(pgxmock.AnyArg(), order.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.SelectedSize).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		created, err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, order.ID, created.ID)
		require.Len(t, created.Items, 1)
		assert.NotEqual(t, uuid.Nil, created.Items[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert fails", func(t *testing.T) {
		order := sampleOrder(nil)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnRows(orderRows(order))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		created, err := repo.CreateOrder(ctx, order)
		assert.Error(t, err)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success with items", func(t *testing.T) {
		customerID := uuid.New()
		order := sampleOrder(&customerID)
		item := order.Items[0]
		itemID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id`).
			WithArgs(order.ID).
			WillReturnRows(orderRows(order))
		mock.ExpectQuery(`FROM order_items WHERE order_id = ANY`).
			WithArgs([]uuid.UUID{order.ID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "name", "price", "quantity", "selected_size"}).
				AddRow(itemID, order.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.SelectedSize))

		got, err := repo.GetOrderByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, customerID, *got.CustomerID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, itemID, got.Items[0].ID)
		assert.True(t, decimal.NewFromInt(1000).Equal(got.Items[0].Price))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE id`).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.GetOrderByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_ListOrders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Filter by status", func(t *testing.T) {
		order := sampleOrder(nil)
		order.Status = domain.OrderStatusDelivered

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE status = \$1 ORDER BY created_at DESC LIMIT 20`).
			WithArgs(domain.OrderStatusDelivered).
			WillReturnRows(orderRows(order))
		mock.ExpectQuery(`FROM order_items`).
			WithArgs([]uuid.UUID{order.ID}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "name", "price", "quantity", "selected_size"}))

		orders, err := repo.ListOrders(ctx, domain.OrderFilter{Status: domain.OrderStatusDelivered, Limit: 20})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].IsGuest())
		assert.Empty(t, orders[0].Items)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No orders", func(t *testing.T) {
		customerID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM orders WHERE customer_id = \$1`).
			WithArgs(customerID.String()).
			WillReturnRows(orderRows())

		orders, err := repo.GetOrdersByCustomerID(ctx, customerID)
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Changed", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusDealComplete, id, domain.OrderStatusDealComplete).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		changed, err := repo.UpdateOrderStatus(ctx, id, domain.OrderStatusDealComplete)
		require.NoError(t, err)
		assert.True(t, changed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already in status", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusDealComplete, id, domain.OrderStatusDealComplete).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		changed, err := repo.UpdateOrderStatus(ctx, id, domain.OrderStatusDealComplete)
		require.NoError(t, err)
		assert.False(t, changed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders SET status`).
			WithArgs(domain.OrderStatusShipped, id, domain.OrderStatusDealComplete).
			WillReturnError(errors.New("database error"))

		_, err := repo.UpdateOrderStatus(ctx, id, domain.OrderStatusShipped)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetUnsettledOrderIDs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT id FROM orders WHERE status = \$1 AND commission_settled_at IS NULL`).
		WithArgs(domain.OrderStatusDealComplete, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(first).AddRow(second))

	ids, err := repo.GetUnsettledOrderIDs(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first, second}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_MarkCommissionSettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	id := uuid.New()

	mock.ExpectExec(`UPDATE orders SET commission_settled_at = NOW\(\)`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkCommissionSettled(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
