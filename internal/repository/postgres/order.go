package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "customer_id", "customer_name", "status",
	"subtotal", "discount", "shipping_fee", "total",
	"COALESCE(coupon_code, '')", "shipping_address", "payment_method",
	"COALESCE(transaction_id, '')", "commission_settled_at", "created_at", "updated_at",
}

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.Status,
		&o.Subtotal, &o.Discount, &o.ShippingFee, &o.Total,
		&o.CouponCode, &o.ShippingAddress, &o.PaymentMethod,
		&o.TransactionID, &o.CommissionSettledAt, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// CreateOrder сохраняет заказ вместе с позициями в одной транзакции
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	created, err := scanOrder(tx.QueryRow(ctx,
		`INSERT INTO orders (customer_id, customer_name, status, subtotal, discount, shipping_fee, total,
			coupon_code, shipping_address, payment_method, transaction_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, NULLIF($11, ''))
		 RETURNING `+joinColumns(orderColumns),
		order.CustomerID, order.CustomerName, order.Status,
		order.Subtotal, order.Discount, order.ShippingFee, order.Total,
		order.CouponCode, order.ShippingAddress, order.PaymentMethod, order.TransactionID,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert order: %w", err)
	}

	created.Items = make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		item.ID = uuid.New()
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, name, price, quantity, selected_size)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, created.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.SelectedSize,
		)
		if err != nil {
			if foreignKeyViolation(err) {
				return nil, domain.ErrProductNotFound
			}
			return nil, fmt.Errorf("repository: failed to insert item for order %s: %w", created.ID, err)
		}
		created.Items = append(created.Items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order %s: %w", created.ID, err)
	}

	return created, nil
}

// GetOrderByID получает заказ с позициями
func (r *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+joinColumns(orderColumns)+` FROM orders WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %s: %w", id, err)
	}

	if err := r.attachItems(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrdersByCustomerID получает все заказы покупателя
func (r *OrderRepository) GetOrdersByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*domain.Order, error) {
	return r.ListOrders(ctx, domain.OrderFilter{CustomerID: &customerID})
}

// ListOrders получает заказы по фильтру, новые первыми
func (r *OrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	query := psql.Select(orderColumns...).From("orders").OrderBy("created_at DESC")
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.CustomerID != nil {
		query = query.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems загружает позиции для набора заказов одним запросом
func (r *OrderRepository) attachItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		order.Items = []domain.OrderItem{}
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, product_id, name, price, quantity, selected_size
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY order_id, name`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		var orderID uuid.UUID
		if err := rows.Scan(&item.ID, &orderID, &item.ProductID, &item.Name, &item.Price, &item.Quantity, &item.SelectedSize); err != nil {
			return fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return nil
}

// UpdateOrderStatus меняет статус заказа.
// Возвращает false, если заказ уже в этом статусе или уже DEAL_COMPLETE.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status <> $1 AND status <> $3`,
		status, id, domain.OrderStatusDealComplete,
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to update status of order %s: %w", id, err)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkCommissionSettled отмечает, что комиссия по заказу обработана
func (r *OrderRepository) MarkCommissionSettled(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE orders SET commission_settled_at = NOW()
		 WHERE id = $1 AND commission_settled_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark order %s settled: %w", id, err)
	}

	return nil
}

// GetUnsettledOrderIDs возвращает DEAL_COMPLETE заказы без обработанной комиссии
func (r *OrderRepository) GetUnsettledOrderIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM orders
		 WHERE status = $1 AND commission_settled_at IS NULL
		 ORDER BY updated_at
		 LIMIT $2`,
		domain.OrderStatusDealComplete, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get unsettled orders: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unsettled orders: %w", err)
	}

	return ids, nil
}
