package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartStores выбирает хранилище по владельцу корзины
type CartStores struct {
	User  cart.Store
	Guest cart.Store
}

// For возвращает хранилище для владельца
func (s CartStores) For(owner cart.Owner) cart.Store {
	if owner.IsGuest() {
		return s.Guest
	}
	return s.User
}

// CartService управляет корзиной покупателя.
// Каждое изменение применяется через cart.Session, поэтому при сбое сохранения
// клиент получает корзину в исходном состоянии.
type CartService struct {
	stores      CartStores
	productRepo domain.ProductRepository
	couponRepo  domain.CouponRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewCartService создает новый CartService
func NewCartService(
	stores CartStores,
	productRepo domain.ProductRepository,
	couponRepo domain.CouponRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		stores:      stores,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Get возвращает текущую корзину
func (s *CartService) Get(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	c, err := s.stores.For(owner).Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to load cart of %s: %w", owner, err)
	}
	return c, nil
}

// AddItem добавляет товар по цене из каталога
func (s *CartService) AddItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int, size string) (*cart.Cart, error) {
	if quantity < 1 {
		return nil, cart.ErrInvalidQuantity
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to get product %s: %w", productID, err)
	}
	product, ok := products[productID]
	if !ok || !product.IsActive {
		return nil, domain.ErrProductNotFound
	}

	return s.do(ctx, owner, cart.AddItem(cart.Item{
		ProductID:    product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Quantity:     quantity,
		SelectedSize: size,
	}))
}

// UpdateQuantity меняет количество товара; значение меньше 1 удаляет его
func (s *CartService) UpdateQuantity(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int) (*cart.Cart, error) {
	return s.do(ctx, owner, cart.SetQuantity(productID, quantity))
}

// RemoveItem удаляет товар во всех размерах
func (s *CartService) RemoveItem(ctx context.Context, owner cart.Owner, productID uuid.UUID) (*cart.Cart, error) {
	return s.do(ctx, owner, cart.RemoveItem(productID))
}

// Clear очищает корзину вместе с промокодом
func (s *CartService) Clear(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	return s.do(ctx, owner, cart.ClearItems())
}

// ApplyCoupon применяет промокод, заменяя предыдущий.
// При ошибке проверки корзина и ранее примененная скидка не меняются.
func (s *CartService) ApplyCoupon(ctx context.Context, owner cart.Owner, code string) (*cart.Cart, error) {
	code = cart.NormalizeCode(code)
	if code == "" {
		metrics.CouponApplied("invalid")
		return nil, domain.ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			metrics.CouponApplied("invalid")
			return nil, domain.ErrCouponInvalid
		}
		return nil, fmt.Errorf("cart service: failed to get coupon %q: %w", code, err)
	}

	c, err := s.do(ctx, owner, cart.ApplyCoupon(coupon, s.now()))
	metrics.CouponApplied(couponOutcome(err))
	return c, err
}

// RemoveCoupon снимает промокод
func (s *CartService) RemoveCoupon(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
	return s.do(ctx, owner, cart.DropCoupon())
}

// do загружает корзину и применяет к ней команду.
// При ошибке сохранения возвращается корзина в состоянии до команды вместе с ошибкой.
func (s *CartService) do(ctx context.Context, owner cart.Owner, cmd cart.Command) (*cart.Cart, error) {
	store := s.stores.For(owner)

	current, err := store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("cart service: failed to load cart of %s: %w", owner, err)
	}

	session := cart.NewSession(owner, store, current)
	if err := session.Do(ctx, cmd); err != nil {
		if errors.Is(err, cart.ErrSyncFailed) {
			s.logger.Error("cart change reverted",
				zap.String("owner", owner.String()),
				zap.Error(err),
			)
			return session.Cart(), err
		}
		return nil, err
	}

	return session.Cart(), nil
}

func couponOutcome(err error) string {
	switch {
	case err == nil:
		return "applied"
	case errors.Is(err, domain.ErrCouponExpired):
		return "expired"
	case errors.Is(err, domain.ErrCouponNotApplicable):
		return "not_applicable"
	case errors.Is(err, domain.ErrCouponInvalid):
		return "invalid"
	default:
		return "error"
	}
}
