package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxPercentage = decimal.NewFromInt(100)

// CouponService реализует domain.CouponService
type CouponService struct {
	couponRepo domain.CouponRepository
	logger     *zap.Logger
}

// NewCouponService создает новый CouponService
func NewCouponService(couponRepo domain.CouponRepository, logger *zap.Logger) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// Create создает активный промокод. Код хранится в верхнем регистре.
func (s *CouponService) Create(ctx context.Context, input domain.CouponInput) (*domain.Coupon, error) {
	code := cart.NormalizeCode(input.Code)
	if code == "" || input.ExpiryDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if !input.Percentage.IsPositive() || input.Percentage.GreaterThan(maxPercentage) {
		return nil, domain.ErrInvalidPercentage
	}

	coupon, err := s.couponRepo.CreateCoupon(ctx, &domain.Coupon{
		Code:       code,
		Percentage: input.Percentage,
		ExpiryDate: input.ExpiryDate,
		IsActive:   true,
		ProductIDs: input.ProductIDs,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCouponExists) {
			return nil, err
		}
		return nil, fmt.Errorf("coupon service: failed to create coupon %q: %w", code, err)
	}

	s.logger.Info("coupon created",
		zap.String("code", coupon.Code),
		zap.String("percentage", coupon.Percentage.String()),
		zap.Int("products", len(coupon.ProductIDs)),
	)

	return coupon, nil
}

// List получает все промокоды
func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("coupon service: failed to list coupons: %w", err)
	}

	return coupons, nil
}

// Toggle включает или выключает промокод
func (s *CouponService) Toggle(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.ToggleCoupon(ctx, cart.NormalizeCode(code))
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("coupon service: failed to toggle coupon %q: %w", code, err)
	}

	return coupon, nil
}

// Delete удаляет промокод. Корзины с этим кодом отклоняются при оформлении.
func (s *CouponService) Delete(ctx context.Context, code string) error {
	if err := s.couponRepo.DeleteCoupon(ctx, cart.NormalizeCode(code)); err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			return err
		}
		return fmt.Errorf("coupon service: failed to delete coupon %q: %w", code, err)
	}

	s.logger.Info("coupon deleted", zap.String("code", cart.NormalizeCode(code)))
	return nil
}
