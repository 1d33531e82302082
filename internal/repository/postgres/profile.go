package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, email, password_hash, full_name, phone, role,
	loyalty_points, referral_code, referred_by_user_id, created_at`

// ProfileRepository реализует domain.ProfileRepository
type ProfileRepository struct {
	db DBTX
}

// NewProfileRepository создает новый ProfileRepository
func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := row.Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.Role,
		&p.LoyaltyPoints, &p.ReferralCode, &p.ReferredByUserID, &p.CreatedAt,
	)
	return p, err
}

// CreateProfile создает профиль покупателя
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	created, err := scanProfile(r.db.QueryRow(ctx,
		`INSERT INTO profiles (email, password_hash, full_name, phone, referral_code, referred_by_user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+profileColumns,
		profile.Email, profile.PasswordHash, profile.FullName, profile.Phone,
		profile.ReferralCode, profile.ReferredByUserID,
	))

	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			// Код реферала генерируется случайно и может совпасть
			if constraint == constraintProfilesReferralCode {
				return nil, domain.ErrReferralCodeTaken
			}
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create profile %q: %w", profile.Email, err)
	}

	return created, nil
}

// GetProfileByEmail получает профиль по email
func (r *ProfileRepository) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`,
		email,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get profile by email %q: %w", email, err)
	}

	return profile, nil
}

// GetProfileByID получает профиль по ID
func (r *ProfileRepository) GetProfileByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get profile by id %s: %w", id, err)
	}

	return profile, nil
}

// GetProfileByReferralCode получает владельца реферального кода
func (r *ProfileRepository) GetProfileByReferralCode(ctx context.Context, code string) (*domain.Profile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE referral_code = $1`,
		code,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get profile by referral code %q: %w", code, err)
	}

	return profile, nil
}
