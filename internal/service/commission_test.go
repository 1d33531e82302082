package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/shopvely/internal/domain"
	domainmocks "github.com/avc/shopvely/internal/domain/mocks"
	"github.com/avc/shopvely/internal/loyalty"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type commissionMocks struct {
	profiles  *domainmocks.ProfileRepositoryMock
	orders    *domainmocks.OrderRepositoryMock
	ledger    *domainmocks.LedgerRepositoryMock
	publisher *domainmocks.EventPublisherMock
}

func newTestCommissionService(t *testing.T) (*CommissionService, commissionMocks) {
	m := commissionMocks{
		profiles:  domainmocks.NewProfileRepositoryMock(t),
		orders:    domainmocks.NewOrderRepositoryMock(t),
		ledger:    domainmocks.NewLedgerRepositoryMock(t),
		publisher: domainmocks.NewEventPublisherMock(t),
	}
	svc := NewCommissionService(m.profiles, m.orders, m.ledger, m.publisher, loyalty.DefaultRules(), zap.NewNop())
	return svc, m
}

func completedOrder(customerID *uuid.UUID, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     domain.OrderStatusDealComplete,
		Items:      items,
	}
}

func item(price string, quantity int) domain.OrderItem {
	return domain.OrderItem{Name: "Item", Price: decimal.RequireFromString(price), Quantity: quantity}
}

func TestCommissionService_Settle(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits referrer five percent as points", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		referrerID := uuid.New()
		customer := &domain.Profile{ID: uuid.New(), ReferredByUserID: &referrerID}
		order := completedOrder(&customer.ID, item("1000", 2))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.ledger.EXPECT().CreditReferralCommission(mock.Anything, mock.MatchedBy(func(c domain.CommissionCredit) bool {
			return c.OrderID == order.ID &&
				c.ReferrerID == referrerID &&
				c.CustomerID == customer.ID &&
				c.Points == 1000 &&
				c.TkAmount.Equal(decimal.NewFromInt(100))
		})).Return(nil).Once()
		m.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.LoyaltyEvent) bool {
			return e.Type == domain.EventCommissionCredited && e.UserID == referrerID && e.Points == 1000
		})).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.True(t, result.Credited)
		assert.Equal(t, int64(1000), result.Points)
		assert.Equal(t, referrerID, *result.ReferrerID)
		assert.Empty(t, result.SkipReason)
	})

	t.Run("Guest order creates no ledger entry", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		order := completedOrder(nil, item("5000", 1))

		m.orders.EXPECT().MarkCommissionSettled(mock.Anything, order.ID).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.False(t, result.Credited)
		assert.Equal(t, SkipGuestOrder, result.SkipReason)
	})

	t.Run("Customer without referrer changes no balance", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		customer := &domain.Profile{ID: uuid.New()}
		order := completedOrder(&customer.ID, item("5000", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.orders.EXPECT().MarkCommissionSettled(mock.Anything, order.ID).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.False(t, result.Credited)
		assert.Equal(t, SkipNoReferrer, result.SkipReason)
	})

	t.Run("Deleted customer is skipped", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		customerID := uuid.New()
		order := completedOrder(&customerID, item("100", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customerID).Return(nil, domain.ErrUserNotFound).Once()
		m.orders.EXPECT().MarkCommissionSettled(mock.Anything, order.ID).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, SkipCustomerMissing, result.SkipReason)
	})

	t.Run("Commission rounding to zero points is skipped", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		referrerID := uuid.New()
		customer := &domain.Profile{ID: uuid.New(), ReferredByUserID: &referrerID}
		order := completedOrder(&customer.ID, item("0.5", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.orders.EXPECT().MarkCommissionSettled(mock.Anything, order.ID).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, SkipZeroPoints, result.SkipReason)
		assert.Equal(t, int64(0), result.Points)
	})

	t.Run("Second settlement is a no-op", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		referrerID := uuid.New()
		customer := &domain.Profile{ID: uuid.New(), ReferredByUserID: &referrerID}
		order := completedOrder(&customer.ID, item("2250", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.ledger.EXPECT().CreditReferralCommission(mock.Anything, mock.Anything).Return(domain.ErrCommissionAlreadyCredited).Once()
		m.orders.EXPECT().MarkCommissionSettled(mock.Anything, order.ID).Return(nil).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.False(t, result.Credited)
		assert.Equal(t, SkipAlreadyCredited, result.SkipReason)
		assert.Equal(t, int64(1125), result.Points)
	})

	t.Run("Ledger failure is returned", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		referrerID := uuid.New()
		customer := &domain.Profile{ID: uuid.New(), ReferredByUserID: &referrerID}
		order := completedOrder(&customer.ID, item("1000", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.ledger.EXPECT().CreditReferralCommission(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()

		result, err := svc.Settle(ctx, order)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Publish failure does not undo credit", func(t *testing.T) {
		svc, m := newTestCommissionService(t)
		referrerID := uuid.New()
		customer := &domain.Profile{ID: uuid.New(), ReferredByUserID: &referrerID}
		order := completedOrder(&customer.ID, item("1000", 1))

		m.profiles.EXPECT().GetProfileByID(mock.Anything, customer.ID).Return(customer, nil).Once()
		m.ledger.EXPECT().CreditReferralCommission(mock.Anything, mock.Anything).Return(nil).Once()
		m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		result, err := svc.Settle(ctx, order)
		require.NoError(t, err)
		assert.True(t, result.Credited)
	})

	t.Run("Order not complete", func(t *testing.T) {
		svc, _ := newTestCommissionService(t)
		order := completedOrder(nil)
		order.Status = domain.OrderStatusDelivered

		result, err := svc.Settle(ctx, order)
		assert.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
		assert.Nil(t, result)
	})
}
