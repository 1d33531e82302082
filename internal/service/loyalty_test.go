package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/shopvely/internal/domain"
	domainmocks "github.com/avc/shopvely/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoyaltyService_GetStats(t *testing.T) {
	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewLoyaltyService(mockLedger)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		stats := &domain.LoyaltyStats{PointsBalance: 500, TotalEarned: 3000, TotalWithdrawn: 2000, PendingWithdrawal: 500, ReferralCode: "AB12CD34"}

		mockLedger.EXPECT().GetStats(mock.Anything, userID).Return(stats, nil).Once()

		got, err := svc.GetStats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("User not found", func(t *testing.T) {
		mockLedger.EXPECT().GetStats(mock.Anything, userID).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.GetStats(ctx, userID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Database error", func(t *testing.T) {
		mockLedger.EXPECT().GetStats(mock.Anything, userID).Return(nil, errors.New("db error")).Once()

		got, err := svc.GetStats(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestLoyaltyService_GetTransactions(t *testing.T) {
	mockLedger := domainmocks.NewLedgerRepositoryMock(t)
	svc := NewLoyaltyService(mockLedger)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Default limit", func(t *testing.T) {
		mockLedger.EXPECT().GetTransactions(mock.Anything, userID, domain.TransactionFilter{Limit: defaultTransactionsLimit}).
			Return([]*domain.LoyaltyTransaction{{ID: uuid.New(), Points: 1000}}, nil).Once()

		txs, err := svc.GetTransactions(ctx, userID, domain.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("Limit capped", func(t *testing.T) {
		filter := domain.TransactionFilter{Type: domain.TransactionTypeEarnReferral, Limit: maxTransactionsLimit}

		mockLedger.EXPECT().GetTransactions(mock.Anything, userID, filter).Return(nil, nil).Once()

		txs, err := svc.GetTransactions(ctx, userID, domain.TransactionFilter{Type: domain.TransactionTypeEarnReferral, Limit: 10000})
		require.NoError(t, err)
		assert.Empty(t, txs)
	})
}
