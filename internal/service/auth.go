package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/utils/jwt"
	"github.com/avc/shopvely/internal/utils/password"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	referralCodeLength   = 8
	referralCodeAttempts = 3
)

// AuthService реализует domain.AuthService
type AuthService struct {
	profileRepo    domain.ProfileRepository
	passwordHasher password.Hasher
	passwordPolicy password.Policy
	jwtManager     *jwt.Manager
	logger         *zap.Logger
	newCode        func() string
}

// NewAuthService создает новый AuthService
func NewAuthService(
	profileRepo domain.ProfileRepository,
	passwordHasher password.Hasher,
	passwordPolicy password.Policy,
	jwtManager *jwt.Manager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		profileRepo:    profileRepo,
		passwordHasher: passwordHasher,
		passwordPolicy: passwordPolicy,
		jwtManager:     jwtManager,
		logger:         logger,
		newCode:        newReferralCode,
	}
}

// newReferralCode генерирует код из 8 символов [0-9A-F]
func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:referralCodeLength])
}

// NormalizeReferralCode приводит реферальный код к каноническому виду
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Register регистрирует нового покупателя.
// Неизвестный реферальный код игнорируется, регистрация продолжается без реферера.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (string, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if email == "" || reg.Password == "" {
		return "", domain.ErrInvalidInput
	}

	if err := s.passwordPolicy.Validate(reg.Password); err != nil {
		return "", domain.ErrPasswordTooShort
	}

	hash, err := s.passwordHasher.Hash(reg.Password)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to hash password for %q: %w", email, err)
	}

	profile := &domain.Profile{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(reg.FullName),
		Phone:        strings.TrimSpace(reg.Phone),
	}

	if code := NormalizeReferralCode(reg.ReferralCode); code != "" {
		referrer, err := s.profileRepo.GetProfileByReferralCode(ctx, code)
		switch {
		case err == nil:
			profile.ReferredByUserID = &referrer.ID
		case errors.Is(err, domain.ErrUserNotFound):
			s.logger.Info("unknown referral code ignored",
				zap.String("email", email),
				zap.String("referral_code", code),
			)
		default:
			return "", fmt.Errorf("auth service: failed to resolve referral code %q: %w", code, err)
		}
	}

	var created *domain.Profile
	for attempt := 1; attempt <= referralCodeAttempts; attempt++ {
		profile.ReferralCode = s.newCode()
		created, err = s.profileRepo.CreateProfile(ctx, profile)
		if !errors.Is(err, domain.ErrReferralCodeTaken) {
			break
		}
		s.logger.Warn("referral code collision, regenerating",
			zap.String("referral_code", profile.ReferralCode),
			zap.Int("attempt", attempt),
		)
	}
	if err != nil {
		// Не оборачиваем sentinel error
		if errors.Is(err, domain.ErrUserExists) {
			return "", err
		}
		return "", fmt.Errorf("auth service: failed to register %q: %w", email, err)
	}

	token, err := s.jwtManager.Generate(created.ID, created.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %s: %w", created.ID, err)
	}

	return token, nil
}

// Login аутентифицирует пользователя
func (s *AuthService) Login(ctx context.Context, email, userPassword string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || userPassword == "" {
		return "", domain.ErrInvalidInput
	}

	profile, err := s.profileRepo.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth service: failed to get profile %q: %w", email, err)
	}

	if err := s.passwordHasher.Check(profile.PasswordHash, userPassword); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(profile.ID, profile.Role)
	if err != nil {
		return "", fmt.Errorf("auth service: failed to generate token for user %s: %w", profile.ID, err)
	}

	return token, nil
}
