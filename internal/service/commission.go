package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/loyalty"
	"github.com/avc/shopvely/internal/metrics"
	"go.uber.org/zap"
)

// Причины, по которым комиссия не начисляется
const (
	SkipGuestOrder      = "guest_order"
	SkipCustomerMissing = "customer_missing"
	SkipNoReferrer      = "no_referrer"
	SkipZeroPoints      = "zero_points"
	SkipAlreadyCredited = "already_credited"
)

// CommissionService реализует domain.CommissionService
type CommissionService struct {
	profileRepo domain.ProfileRepository
	orderRepo   domain.OrderRepository
	ledgerRepo  domain.LedgerRepository
	publisher   domain.EventPublisher
	rules       loyalty.Rules
	logger      *zap.Logger
	now         func() time.Time
}

// NewCommissionService создает новый CommissionService
func NewCommissionService(
	profileRepo domain.ProfileRepository,
	orderRepo domain.OrderRepository,
	ledgerRepo domain.LedgerRepository,
	publisher domain.EventPublisher,
	rules loyalty.Rules,
	logger *zap.Logger,
) *CommissionService {
	return &CommissionService{
		profileRepo: profileRepo,
		orderRepo:   orderRepo,
		ledgerRepo:  ledgerRepo,
		publisher:   publisher,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}
}

// Settle начисляет рефереру покупателя комиссию по заказу в статусе DEAL_COMPLETE.
// Заказ, по которому комиссия не положена, отмечается обработанным без записи в журнал.
// Повторный вызов для того же заказа ничего не меняет.
func (s *CommissionService) Settle(ctx context.Context, order *domain.Order) (*domain.CommissionResult, error) {
	if order.Status != domain.OrderStatusDealComplete {
		return nil, fmt.Errorf("commission service: order %s is %s: %w", order.ID, order.Status, domain.ErrInvalidOrderStatus)
	}

	result := &domain.CommissionResult{OrderID: order.ID}

	if order.IsGuest() {
		return s.skip(ctx, result, SkipGuestOrder)
	}

	customer, err := s.profileRepo.GetProfileByID(ctx, *order.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.skip(ctx, result, SkipCustomerMissing)
		}
		return nil, fmt.Errorf("commission service: failed to get customer of order %s: %w", order.ID, err)
	}

	if customer.ReferredByUserID == nil || *customer.ReferredByUserID == customer.ID {
		return s.skip(ctx, result, SkipNoReferrer)
	}

	tk, points := s.rules.Commission(order.Items)
	result.ReferrerID = customer.ReferredByUserID
	result.Points = points
	result.TkAmount = tk

	if points <= 0 {
		return s.skip(ctx, result, SkipZeroPoints)
	}

	err = s.ledgerRepo.CreditReferralCommission(ctx, domain.CommissionCredit{
		OrderID:    order.ID,
		ReferrerID: *customer.ReferredByUserID,
		CustomerID: customer.ID,
		Points:     points,
		TkAmount:   tk,
	})
	if errors.Is(err, domain.ErrCommissionAlreadyCredited) {
		s.logger.Info("commission already credited",
			zap.String("order_id", order.ID.String()),
		)
		return s.skip(ctx, result, SkipAlreadyCredited)
	}
	if err != nil {
		return nil, fmt.Errorf("commission service: failed to credit commission for order %s: %w", order.ID, err)
	}

	result.Credited = true
	metrics.CommissionCredited(points)

	s.logger.Info("referral commission credited",
		zap.String("order_id", order.ID.String()),
		zap.String("referrer_id", customer.ReferredByUserID.String()),
		zap.Int64("points", points),
		zap.String("tk_amount", tk.String()),
	)

	orderID := order.ID
	publishEvent(ctx, s.publisher, s.logger, domain.LoyaltyEvent{
		Type:       domain.EventCommissionCredited,
		UserID:     *customer.ReferredByUserID,
		Points:     points,
		TkAmount:   tk,
		OrderID:    &orderID,
		OccurredAt: s.now(),
	})

	return result, nil
}

func (s *CommissionService) skip(ctx context.Context, result *domain.CommissionResult, reason string) (*domain.CommissionResult, error) {
	if err := s.orderRepo.MarkCommissionSettled(ctx, result.OrderID); err != nil {
		return nil, fmt.Errorf("commission service: failed to mark order %s settled: %w", result.OrderID, err)
	}

	metrics.CommissionSkipped(reason)
	result.SkipReason = reason

	return result, nil
}

// publishEvent публикует событие после коммита.
// Ошибка публикации только логируется: изменение кошелька уже сохранено.
func publishEvent(ctx context.Context, publisher domain.EventPublisher, logger *zap.Logger, event domain.LoyaltyEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish loyalty event",
			zap.String("type", event.Type),
			zap.String("user_id", event.UserID.String()),
			zap.Error(err),
		)
	}
}
