package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultTransactionsLimit = 50
	maxTransactionsLimit     = 500
)

// LoyaltyService реализует domain.LoyaltyService
type LoyaltyService struct {
	ledgerRepo domain.LedgerRepository
}

// NewLoyaltyService создает новый LoyaltyService
func NewLoyaltyService(ledgerRepo domain.LedgerRepository) *LoyaltyService {
	return &LoyaltyService{
		ledgerRepo: ledgerRepo,
	}
}

// GetStats получает сводку кошелька пользователя
func (s *LoyaltyService) GetStats(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyStats, error) {
	stats, err := s.ledgerRepo.GetStats(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("loyalty service: failed to get stats for user %s: %w", userID, err)
	}

	return stats, nil
}

// GetTransactions получает историю начислений и списаний
func (s *LoyaltyService) GetTransactions(ctx context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]*domain.LoyaltyTransaction, error) {
	if filter.Limit == 0 {
		filter.Limit = defaultTransactionsLimit
	}
	if filter.Limit > maxTransactionsLimit {
		filter.Limit = maxTransactionsLimit
	}

	transactions, err := s.ledgerRepo.GetTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("loyalty service: failed to get transactions for user %s: %w", userID, err)
	}

	return transactions, nil
}
