package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumnNames = []string{
	"id", "email", "password_hash", "full_name", "phone", "role",
	"loyalty_points", "referral_code", "referred_by_user_id", "created_at",
}

func profileRows(p *domain.Profile) *pgxmock.Rows {
	return pgxmock.NewRows(profileColumnNames).AddRow(
		p.ID, p.Email, p.PasswordHash, p.FullName, p.Phone, p.Role,
		p.LoyaltyPoints, p.ReferralCode, p.ReferredByUserID, p.CreatedAt,
	)
}

func TestProfileRepository_CreateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock)
	ctx := context.Background()

	referrerID := uuid.New()
	input := &domain.Profile{
		Email:            "rahim@example.com",
		PasswordHash:     "hashed",
		FullName:         "Rahim Uddin",
		Phone:            "01712345678",
		ReferralCode:     "AB12CD34",
		ReferredByUserID: &referrerID,
	}

	t.Run("Success", func(t *testing.T) {
		stored := *input
		stored.ID = uuid.New()
		stored.Role = domain.RoleCustomer
		stored.CreatedAt = time.Now()

		mock.ExpectQuery(`INSERT INTO profiles`).
			WithArgs(input.Email, input.PasswordHash, input.FullName, input.Phone, input.ReferralCode, input.ReferredByUserID).
			WillReturnRows(profileRows(&stored))

		profile, err := repo.CreateProfile(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, profile.ID)
		assert.Equal(t, domain.RoleCustomer, profile.Role)
		require.NotNil(t, profile.ReferredByUserID)
		assert.Equal(t, referrerID, *profile.ReferredByUserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email already exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO profiles`).
			WithArgs(input.Email, input.PasswordHash, input.FullName, input.Phone, input.ReferralCode, input.ReferredByUserID).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintProfilesEmail})

		profile, err := repo.CreateProfile(ctx, input)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Nil(t, profile)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Referral code collision", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO profiles`).
			WithArgs(input.Email, input.PasswordHash, input.FullName, input.Phone, input.ReferralCode, input.ReferredByUserID).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintProfilesReferralCode})

		profile, err := repo.CreateProfile(ctx, input)
		assert.ErrorIs(t, err, domain.ErrReferralCodeTaken)
		assert.Nil(t, profile)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO profiles`).
			WithArgs(input.Email, input.PasswordHash, input.FullName, input.Phone, input.ReferralCode, input.ReferredByUserID).
			WillReturnError(errors.New("database error"))

		profile, err := repo.CreateProfile(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, profile)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_GetProfileByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		stored := &domain.Profile{
			ID:            uuid.New(),
			Email:         "karim@example.com",
			PasswordHash:  "hashed",
			Role:          domain.RoleAdmin,
			LoyaltyPoints: 2500,
			ReferralCode:  "ZX98YU76",
			CreatedAt:     time.Now(),
		}

		mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE email`).
			WithArgs(stored.Email).
			WillReturnRows(profileRows(stored))

		profile, err := repo.GetProfileByEmail(ctx, stored.Email)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, profile.ID)
		assert.Equal(t, int64(2500), profile.LoyaltyPoints)
		assert.Nil(t, profile.ReferredByUserID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE email`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		profile, err := repo.GetProfileByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, profile)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_GetProfileByReferralCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		stored := &domain.Profile{ID: uuid.New(), Email: "ref@example.com", Role: domain.RoleCustomer, ReferralCode: "REF00001"}

		mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE referral_code`).
			WithArgs("REF00001").
			WillReturnRows(profileRows(stored))

		profile, err := repo.GetProfileByReferralCode(ctx, "REF00001")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, profile.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown code", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM profiles WHERE referral_code`).
			WithArgs("NOPE").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetProfileByReferralCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
