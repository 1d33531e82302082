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

// LedgerRepository реализует domain.LedgerRepository.
// Журнал только дополняется: записи не изменяются и не удаляются.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// CreditReferralCommission атомарно записывает начисление, увеличивает баланс
// реферера и отмечает заказ обработанным.
// Повторное начисление по тому же заказу возвращает domain.ErrCommissionAlreadyCredited.
func (r *LedgerRepository) CreditReferralCommission(ctx context.Context, credit domain.CommissionCredit) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin commission transaction for order %s: %w", credit.OrderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	meta := map[string]any{
		"from_customer": credit.CustomerID.String(),
		"description":   fmt.Sprintf("Referrer credited with %d points.", credit.Points),
	}

	// Уникальный индекс (order_id, type) не дает начислить комиссию дважды
	tag, err := tx.Exec(ctx,
		`INSERT INTO loyalty_transactions (user_id, type, points, tk_amount, order_id, meta_json)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (order_id, type) WHERE order_id IS NOT NULL DO NOTHING`,
		credit.ReferrerID, domain.TransactionTypeEarnReferral, credit.Points, credit.TkAmount, credit.OrderID, meta,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert commission for order %s: %w", credit.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommissionAlreadyCredited
	}

	tag, err = tx.Exec(ctx,
		`UPDATE profiles SET loyalty_points = loyalty_points + $1 WHERE id = $2`,
		credit.Points, credit.ReferrerID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to credit referrer %s: %w", credit.ReferrerID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET commission_settled_at = NOW() WHERE id = $1`,
		credit.OrderID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to mark order %s settled: %w", credit.OrderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit commission for order %s: %w", credit.OrderID, err)
	}

	return nil
}

// GetStats получает сводку кошелька пользователя
func (r *LedgerRepository) GetStats(ctx context.Context, userID uuid.UUID) (*domain.LoyaltyStats, error) {
	stats := &domain.LoyaltyStats{}

	err := r.db.QueryRow(ctx,
		`SELECT p.loyalty_points, p.referral_code,
			COALESCE((SELECT SUM(points) FROM loyalty_transactions
				WHERE user_id = p.id AND type = $2), 0)::bigint AS total_earned,
			COALESCE((SELECT SUM(points_amount) FROM withdraw_requests
				WHERE user_id = p.id AND status = $3), 0)::bigint AS total_withdrawn,
			COALESCE((SELECT SUM(points_amount) FROM withdraw_requests
				WHERE user_id = p.id AND status = $4), 0)::bigint AS pending_withdrawal
		 FROM profiles p
		 WHERE p.id = $1`,
		userID, domain.TransactionTypeEarnReferral, domain.WithdrawStatusCompleted, domain.WithdrawStatusProcessing,
	).Scan(&stats.PointsBalance, &stats.ReferralCode, &stats.TotalEarned, &stats.TotalWithdrawn, &stats.PendingWithdrawal)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get loyalty stats for user %s: %w", userID, err)
	}

	return stats, nil
}

// GetTransactions получает записи журнала пользователя, новые первыми
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]*domain.LoyaltyTransaction, error) {
	query := psql.
		Select("id", "user_id", "type", "points", "tk_amount", "order_id", "meta_json", "created_at").
		From("loyalty_transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if filter.Type != "" {
		query = query.Where(sq.Eq{"type": filter.Type})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.LoyaltyTransaction
	for rows.Next() {
		t := &domain.LoyaltyTransaction{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Points, &t.TkAmount, &t.OrderID, &t.Meta, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
