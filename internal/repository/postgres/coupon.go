package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const couponColumns = `id, code, percentage, expiry_date, is_active, product_ids, created_at`

// CouponRepository реализует domain.CouponRepository
type CouponRepository struct {
	db DBTX
}

// NewCouponRepository создает новый CouponRepository
func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	c := &domain.Coupon{}
	err := row.Scan(&c.ID, &c.Code, &c.Percentage, &c.ExpiryDate, &c.IsActive, &c.ProductIDs, &c.CreatedAt)
	return c, err
}

// CreateCoupon сохраняет новый промокод
func (r *CouponRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	productIDs := coupon.ProductIDs
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	created, err := scanCoupon(r.db.QueryRow(ctx,
		`INSERT INTO coupons (code, percentage, expiry_date, is_active, product_ids)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+couponColumns,
		coupon.Code, coupon.Percentage, coupon.ExpiryDate, coupon.IsActive, productIDs,
	))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == constraintCouponsCode {
			return nil, domain.ErrCouponExists
		}
		return nil, fmt.Errorf("repository: failed to create coupon %q: %w", coupon.Code, err)
	}

	return created, nil
}

// GetCouponByCode получает промокод по коду
func (r *CouponRepository) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`,
		code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to get coupon %q: %w", code, err)
	}

	return coupon, nil
}

// ListCoupons получает все промокоды, новые первыми
func (r *CouponRepository) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*domain.Coupon
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan coupon: %w", err)
		}
		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating coupons: %w", err)
	}

	return coupons, nil
}

// ToggleCoupon инвертирует флаг активности промокода
func (r *CouponRepository) ToggleCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.db.QueryRow(ctx,
		`UPDATE coupons SET is_active = NOT is_active WHERE code = $1 RETURNING `+couponColumns,
		code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, fmt.Errorf("repository: failed to toggle coupon %q: %w", code, err)
	}

	return coupon, nil
}

// DeleteCoupon удаляет промокод
func (r *CouponRepository) DeleteCoupon(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("repository: failed to delete coupon %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCouponNotFound
	}

	return nil
}
