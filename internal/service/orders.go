package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/loyalty"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LoyaltyErrorMessage показывается администратору, если заказ завершен,
// а начислить комиссию не удалось
const LoyaltyErrorMessage = "Loyalty System Error"

// OrderService реализует domain.OrderService и оформление заказа
type OrderService struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	couponRepo  domain.CouponRepository
	carts       CartStores
	commission  domain.CommissionService
	rules       loyalty.Rules
	logger      *zap.Logger
	now         func() time.Time
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	couponRepo domain.CouponRepository,
	carts CartStores,
	commission domain.CommissionService,
	rules loyalty.Rules,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		carts:       carts,
		commission:  commission,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// PlaceOrder оформляет заказ из корзины.
// Цены берутся из каталога, а промокод проверяется заново: сумма из корзины клиента не используется.
func (s *OrderService) PlaceOrder(ctx context.Context, owner cart.Owner, input domain.CheckoutInput) (*domain.Order, error) {
	if !input.ShippingAddress.Complete() {
		return nil, domain.ErrInvalidShipping
	}
	if err := validatePayment(input); err != nil {
		return nil, err
	}

	store := s.carts.For(owner)
	c, err := store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to load cart of %s: %w", owner, err)
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.reprice(ctx, c.Items)
	if err != nil {
		return nil, err
	}

	repriced := &cart.Cart{Items: items}
	subtotal := repriced.Subtotal()

	discount, couponCode, err := s.revalidateCoupon(ctx, c.AppliedCoupon, items)
	if err != nil {
		return nil, err
	}

	repriced.SetCoupon(couponCode, discount)
	payable := repriced.Payable()
	shipping := s.rules.ShippingFor(payable)

	order := &domain.Order{
		CustomerID:      owner.UserID,
		CustomerName:    input.ShippingAddress.Name,
		Status:          domain.OrderStatusPending,
		Items:           toOrderItems(items),
		Subtotal:        subtotal,
		Discount:        discount,
		ShippingFee:     shipping,
		Total:           payable.Add(shipping),
		CouponCode:      couponCode,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		TransactionID:   input.TransactionID,
	}

	created, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to create order for %s: %w", owner, err)
	}

	// Заказ уже сохранен, поэтому ошибка очистки корзины не отменяет оформление
	if err := store.Delete(ctx, owner); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("owner", owner.String()),
			zap.String("order_id", created.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("order placed",
		zap.String("order_id", created.ID.String()),
		zap.String("owner", owner.String()),
		zap.String("total", created.Total.String()),
	)

	return created, nil
}

// reprice подставляет актуальные цены и названия из каталога
func (s *OrderService) reprice(ctx context.Context, items []cart.Item) ([]cart.Item, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get products: %w", err)
	}

	repriced := make([]cart.Item, 0, len(items))
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok || !product.IsActive {
			return nil, fmt.Errorf("order service: product %s: %w", item.ProductID, domain.ErrProductNotFound)
		}
		item.Name = product.Name
		item.Price = product.Price
		repriced = append(repriced, item)
	}

	return repriced, nil
}

// revalidateCoupon заново проверяет промокод корзины по актуальным позициям.
// Удаленный промокод считается недействительным.
func (s *OrderService) revalidateCoupon(ctx context.Context, code string, items []cart.Item) (decimal.Decimal, string, error) {
	code = cart.NormalizeCode(code)
	if code == "" {
		return decimal.Zero, "", nil
	}

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return decimal.Zero, "", domain.ErrCouponInvalid
		}
		return decimal.Zero, "", fmt.Errorf("order service: failed to get coupon %q: %w", code, err)
	}

	discount, err := cart.Evaluate(coupon, items, s.now())
	if err != nil {
		return decimal.Zero, "", err
	}

	return discount, coupon.Code, nil
}

func validatePayment(input domain.CheckoutInput) error {
	switch input.PaymentMethod {
	case domain.PaymentMethodCOD:
		return nil
	case domain.PaymentMethodMobile, domain.PaymentMethodCard:
		if strings.TrimSpace(input.TransactionID) == "" {
			return fmt.Errorf("%w: transaction id required for %s", domain.ErrInvalidPayment, input.PaymentMethod)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown method %q", domain.ErrInvalidPayment, input.PaymentMethod)
	}
}

func toOrderItems(items []cart.Item) []domain.OrderItem {
	result := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		productID := item.ProductID
		result = append(result, domain.OrderItem{
			ProductID:    &productID,
			Name:         item.Name,
			Price:        item.Price,
			Quantity:     item.Quantity,
			SelectedSize: item.SelectedSize,
		})
	}
	return result
}

// GetOrders получает все заказы пользователя
func (s *OrderService) GetOrders(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByCustomerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %s: %w", userID, err)
	}

	return orders, nil
}

// ListOrders получает заказы по фильтру для администратора
func (s *OrderService) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus меняет статус заказа.
// Переход в DEAL_COMPLETE запускает начисление комиссии; ее сбой не откатывает статус,
// а возвращается в StatusChange.LoyaltyError. DEAL_COMPLETE конечен.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (*domain.StatusChange, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %s: %w", orderID, err)
	}

	if order.Status == domain.OrderStatusDealComplete {
		if status == domain.OrderStatusDealComplete {
			return nil, domain.ErrOrderAlreadyComplete
		}
		return nil, domain.ErrInvalidStatusTransition
	}

	if order.Status == status {
		return &domain.StatusChange{Order: order}, nil
	}

	changed, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to update order %s: %w", orderID, err)
	}
	if !changed {
		// Заказ успели завершить параллельно
		if status == domain.OrderStatusDealComplete {
			return nil, domain.ErrOrderAlreadyComplete
		}
		return nil, domain.ErrInvalidStatusTransition
	}

	order.Status = status
	order.UpdatedAt = s.now()
	change := &domain.StatusChange{Order: order}

	s.logger.Info("order status changed",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(status)),
	)

	if status != domain.OrderStatusDealComplete {
		return change, nil
	}

	result, err := s.commission.Settle(ctx, order)
	if err != nil {
		s.logger.Error("failed to settle referral commission",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		change.LoyaltyError = LoyaltyErrorMessage
		return change, nil
	}

	change.Commission = result
	return change, nil
}
