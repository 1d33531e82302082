package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var withdrawColumns = []string{
	"id", "user_id", "points_amount", "withdraw_tk", "method", "number",
	"status", "note", "processed_by_admin_id", "processed_at", "created_at",
}

// WithdrawRepository реализует domain.WithdrawRepository
type WithdrawRepository struct {
	db DBTX
}

// NewWithdrawRepository создает новый WithdrawRepository
func NewWithdrawRepository(db DBTX) *WithdrawRepository {
	return &WithdrawRepository{db: db}
}

func scanWithdraw(row pgx.Row) (*domain.WithdrawRequest, error) {
	w := &domain.WithdrawRequest{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.PointsAmount, &w.WithdrawTk, &w.Method, &w.Number,
		&w.Status, &w.Note, &w.ProcessedByAdminID, &w.ProcessedAt, &w.CreatedAt,
	)
	return w, err
}

// CreateWithdrawRequest списывает баллы и создает заявку в статусе PROCESSING.
// Баланс блокируется на время транзакции, поэтому параллельные заявки не уводят его в минус.
func (r *WithdrawRepository) CreateWithdrawRequest(ctx context.Context, userID uuid.UUID, input domain.WithdrawInput, withdrawTk decimal.Decimal) (*domain.WithdrawRequest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin withdraw transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var balance int64
	err = tx.QueryRow(ctx,
		`SELECT loyalty_points FROM profiles WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock balance of user %s: %w", userID, err)
	}

	if balance < input.Points {
		return nil, domain.ErrInsufficientPoints
	}

	_, err = tx.Exec(ctx,
		`UPDATE profiles SET loyalty_points = loyalty_points - $1 WHERE id = $2`,
		input.Points, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to debit user %s: %w", userID, err)
	}

	request, err := scanWithdraw(tx.QueryRow(ctx,
		`INSERT INTO withdraw_requests (user_id, points_amount, withdraw_tk, method, number)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+joinColumns(withdrawColumns),
		userID, input.Points, withdrawTk, input.Method, input.Number,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert withdraw request: %w", err)
	}

	err = insertLedgerEntry(ctx, tx, userID, domain.TransactionTypeWithdrawRequest,
		-input.Points, withdrawTk.Neg(), request.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit withdraw request: %w", err)
	}

	return request, nil
}

// ApproveWithdrawRequest переводит заявку в COMPLETED
func (r *WithdrawRepository) ApproveWithdrawRequest(ctx context.Context, id, adminID uuid.UUID) (*domain.WithdrawRequest, error) {
	return r.decide(ctx, id, adminID, domain.WithdrawStatusCompleted, "")
}

// RejectWithdrawRequest переводит заявку в REJECTED и возвращает баллы пользователю
func (r *WithdrawRepository) RejectWithdrawRequest(ctx context.Context, id, adminID uuid.UUID, note string) (*domain.WithdrawRequest, error) {
	return r.decide(ctx, id, adminID, domain.WithdrawStatusRejected, note)
}

// decide закрывает заявку. Закрыть можно только заявку в статусе PROCESSING.
func (r *WithdrawRepository) decide(ctx context.Context, id, adminID uuid.UUID, status domain.WithdrawStatus, note string) (*domain.WithdrawRequest, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin withdraw decision: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	current, err := scanWithdraw(tx.QueryRow(ctx,
		`SELECT `+joinColumns(withdrawColumns)+` FROM withdraw_requests WHERE id = $1 FOR UPDATE`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWithdrawNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock withdraw request %s: %w", id, err)
	}

	if current.Status != domain.WithdrawStatusProcessing {
		return nil, domain.ErrWithdrawAlreadyProcessed
	}

	updated, err := scanWithdraw(tx.QueryRow(ctx,
		`UPDATE withdraw_requests
		 SET status = $1, note = $2, processed_by_admin_id = $3, processed_at = NOW()
		 WHERE id = $4
		 RETURNING `+joinColumns(withdrawColumns),
		status, note, adminID, id,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to update withdraw request %s: %w", id, err)
	}

	switch status {
	case domain.WithdrawStatusRejected:
		_, err = tx.Exec(ctx,
			`UPDATE profiles SET loyalty_points = loyalty_points + $1 WHERE id = $2`,
			current.PointsAmount, current.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to refund user %s: %w", current.UserID, err)
		}
		err = insertLedgerEntry(ctx, tx, current.UserID, domain.TransactionTypeWithdrawRejectedRefund,
			current.PointsAmount, decimal.Zero, id)
	default:
		err = insertLedgerEntry(ctx, tx, current.UserID, domain.TransactionTypeWithdrawCompleted,
			0, decimal.Zero, id)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit withdraw decision %s: %w", id, err)
	}

	return updated, nil
}

// ListWithdrawRequests получает заявки по фильтру, новые первыми
func (r *WithdrawRepository) ListWithdrawRequests(ctx context.Context, filter domain.WithdrawFilter) ([]*domain.WithdrawRequest, error) {
	query := psql.Select(withdrawColumns...).From("withdraw_requests").OrderBy("created_at DESC")
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}
	if filter.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build withdraw query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list withdraw requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.WithdrawRequest
	for rows.Next() {
		request, err := scanWithdraw(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan withdraw request: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating withdraw requests: %w", err)
	}

	return requests, nil
}

// insertLedgerEntry добавляет запись журнала, связанную с заявкой на вывод
func insertLedgerEntry(ctx context.Context, tx pgx.Tx, userID uuid.UUID, txType domain.TransactionType, points int64, tk decimal.Decimal, requestID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO loyalty_transactions (user_id, type, points, tk_amount, meta_json)
		 VALUES ($1, $2, $3, $4, $5)`,
		userID, txType, points, tk, map[string]any{"request_id": requestID.String()},
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert %s entry for user %s: %w", txType, userID, err)
	}
	return nil
}
