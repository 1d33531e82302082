package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couponRows(coupons ...*domain.Coupon) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "code", "percentage", "expiry_date", "is_active", "product_ids", "created_at"})
	for _, c := range coupons {
		rows.AddRow(c.ID, c.Code, c.Percentage, c.ExpiryDate, c.IsActive, c.ProductIDs, c.CreatedAt)
	}
	return rows
}

func sampleCoupon() *domain.Coupon {
	return &domain.Coupon{
		ID:         uuid.New(),
		Code:       "EID25",
		Percentage: decimal.NewFromInt(25),
		ExpiryDate: time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
		ProductIDs: []uuid.UUID{},
		CreatedAt:  time.Now(),
	}
}

func TestCouponRepository_CreateCoupon(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()

	t.Run("Success without product restriction", func(t *testing.T) {
		coupon := sampleCoupon()
		input := *coupon
		input.ProductIDs = nil

		mock.ExpectQuery(`INSERT INTO coupons`).
			WithArgs(coupon.Code, coupon.Percentage, coupon.ExpiryDate, true, []uuid.UUID{}).
			WillReturnRows(couponRows(coupon))

		created, err := repo.CreateCoupon(ctx, &input)
		require.NoError(t, err)
		assert.Equal(t, coupon.ID, created.ID)
		assert.False(t, created.Restricted())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate code", func(t *testing.T) {
		coupon := sampleCoupon()

		mock.ExpectQuery(`INSERT INTO coupons`).
			WithArgs(coupon.Code, coupon.Percentage, coupon.ExpiryDate, true, coupon.ProductIDs).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintCouponsCode})

		created, err := repo.CreateCoupon(ctx, coupon)
		assert.ErrorIs(t, err, domain.ErrCouponExists)
		assert.Nil(t, created)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCouponRepository_GetCouponByCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()

	t.Run("Restricted coupon", func(t *testing.T) {
		coupon := sampleCoupon()
		coupon.ProductIDs = []uuid.UUID{uuid.New()}

		mock.ExpectQuery(`SELECT (.+) FROM coupons WHERE code = \$1`).
			WithArgs("EID25").
			WillReturnRows(couponRows(coupon))

		got, err := repo.GetCouponByCode(ctx, "EID25")
		require.NoError(t, err)
		assert.True(t, got.Restricted())
		assert.True(t, decimal.NewFromInt(25).Equal(got.Percentage))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM coupons`).
			WithArgs("MISSING").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetCouponByCode(ctx, "MISSING")
		assert.ErrorIs(t, err, domain.ErrCouponNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCouponRepository_ToggleAndDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)
	ctx := context.Background()

	t.Run("Toggle", func(t *testing.T) {
		coupon := sampleCoupon()
		coupon.IsActive = false

		mock.ExpectQuery(`UPDATE coupons SET is_active = NOT is_active`).
			WithArgs("EID25").
			WillReturnRows(couponRows(coupon))

		got, err := repo.ToggleCoupon(ctx, "EID25")
		require.NoError(t, err)
		assert.False(t, got.IsActive)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Toggle unknown", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE coupons`).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.ToggleCoupon(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrCouponNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM coupons WHERE code = \$1`).
			WithArgs("EID25").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteCoupon(ctx, "EID25"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete unknown", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM coupons`).
			WithArgs("NOPE").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.DeleteCoupon(ctx, "NOPE"), domain.ErrCouponNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCouponRepository_ListCoupons(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCouponRepository(mock)

	mock.ExpectQuery(`SELECT (.+) FROM coupons ORDER BY created_at DESC`).
		WillReturnRows(couponRows(sampleCoupon(), sampleCoupon()))

	coupons, err := repo.ListCoupons(context.Background())
	require.NoError(t, err)
	assert.Len(t, coupons, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}
