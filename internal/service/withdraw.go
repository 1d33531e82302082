package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/loyalty"
	"github.com/avc/shopvely/internal/metrics"
	"github.com/avc/shopvely/internal/utils/phone"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WithdrawService реализует domain.WithdrawService
type WithdrawService struct {
	profileRepo  domain.ProfileRepository
	withdrawRepo domain.WithdrawRepository
	publisher    domain.EventPublisher
	rules        loyalty.Rules
	logger       *zap.Logger
	now          func() time.Time
}

// NewWithdrawService создает новый WithdrawService
func NewWithdrawService(
	profileRepo domain.ProfileRepository,
	withdrawRepo domain.WithdrawRepository,
	publisher domain.EventPublisher,
	rules loyalty.Rules,
	logger *zap.Logger,
) *WithdrawService {
	return &WithdrawService{
		profileRepo:  profileRepo,
		withdrawRepo: withdrawRepo,
		publisher:    publisher,
		rules:        rules,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit создает заявку на вывод и сразу списывает баллы.
// Все проверки выполняются до записи, поэтому отклоненная заявка баланс не меняет.
func (s *WithdrawService) Submit(ctx context.Context, userID uuid.UUID, input domain.WithdrawInput) (*domain.WithdrawRequest, error) {
	if input.Points < 1 {
		return nil, domain.ErrInvalidWithdrawAmount
	}
	if input.Points < s.rules.MinWithdrawPoints {
		return nil, fmt.Errorf("%w: minimum is %d points", domain.ErrBelowMinimumWithdrawal, s.rules.MinWithdrawPoints)
	}
	if !input.Method.Valid() {
		return nil, domain.ErrInvalidPayoutMethod
	}

	number, err := phone.NormalizeWallet(input.Number)
	if err != nil {
		return nil, domain.ErrInvalidWalletNumber
	}
	input.Number = number

	profile, err := s.profileRepo.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("withdraw service: failed to get profile %s: %w", userID, err)
	}
	if profile.LoyaltyPoints < input.Points {
		return nil, domain.ErrInsufficientPoints
	}

	withdrawTk := s.rules.PointsToTaka(input.Points)

	// Баланс проверяется повторно под блокировкой внутри транзакции
	request, err := s.withdrawRepo.CreateWithdrawRequest(ctx, userID, input, withdrawTk)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientPoints) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("withdraw service: failed to create request for user %s: %w", userID, err)
	}

	metrics.Withdrawal(string(domain.WithdrawStatusProcessing))
	s.logger.Info("withdraw requested",
		zap.String("request_id", request.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("points", request.PointsAmount),
		zap.String("method", string(request.Method)),
	)

	requestID := request.ID
	publishEvent(ctx, s.publisher, s.logger, domain.LoyaltyEvent{
		Type:       domain.EventWithdrawRequested,
		UserID:     userID,
		Points:     -request.PointsAmount,
		TkAmount:   request.WithdrawTk,
		RequestID:  &requestID,
		OccurredAt: s.now(),
	})

	return request, nil
}

// Approve подтверждает выплату. Баллы были списаны при создании заявки.
func (s *WithdrawService) Approve(ctx context.Context, id, adminID uuid.UUID) (*domain.WithdrawRequest, error) {
	request, err := s.withdrawRepo.ApproveWithdrawRequest(ctx, id, adminID)
	if err != nil {
		return nil, s.decisionError(id, err)
	}

	s.decided(ctx, request, adminID, domain.EventWithdrawCompleted, 0)
	return request, nil
}

// Reject отклоняет заявку и возвращает баллы пользователю
func (s *WithdrawService) Reject(ctx context.Context, id, adminID uuid.UUID, note string) (*domain.WithdrawRequest, error) {
	request, err := s.withdrawRepo.RejectWithdrawRequest(ctx, id, adminID, note)
	if err != nil {
		return nil, s.decisionError(id, err)
	}

	s.decided(ctx, request, adminID, domain.EventWithdrawRejected, request.PointsAmount)
	return request, nil
}

// List получает заявки по фильтру
func (s *WithdrawService) List(ctx context.Context, filter domain.WithdrawFilter) ([]*domain.WithdrawRequest, error) {
	requests, err := s.withdrawRepo.ListWithdrawRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("withdraw service: failed to list requests: %w", err)
	}

	return requests, nil
}

func (s *WithdrawService) decisionError(id uuid.UUID, err error) error {
	if errors.Is(err, domain.ErrWithdrawNotFound) || errors.Is(err, domain.ErrWithdrawAlreadyProcessed) {
		return err
	}
	return fmt.Errorf("withdraw service: failed to process request %s: %w", id, err)
}

func (s *WithdrawService) decided(ctx context.Context, request *domain.WithdrawRequest, adminID uuid.UUID, eventType string, points int64) {
	metrics.Withdrawal(string(request.Status))
	s.logger.Info("withdraw request processed",
		zap.String("request_id", request.ID.String()),
		zap.String("status", string(request.Status)),
		zap.String("admin_id", adminID.String()),
	)

	requestID := request.ID
	publishEvent(ctx, s.publisher, s.logger, domain.LoyaltyEvent{
		Type:       eventType,
		UserID:     request.UserID,
		Points:     points,
		TkAmount:   request.WithdrawTk,
		RequestID:  &requestID,
		OccurredAt: s.now(),
	})
}
