package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrReferralCodeTaken  = errors.New("referral code already taken")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrForbidden          = errors.New("forbidden")
)

// Ошибки заказов
var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderAlreadyComplete    = errors.New("order already DEAL_COMPLETE")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrProductNotFound         = errors.New("product not found")
	ErrInvalidShipping         = errors.New("shipping information incomplete")
	ErrInvalidPayment          = errors.New("invalid payment details")
)

// Ошибки лояльности и вывода
var (
	ErrInsufficientPoints        = errors.New("insufficient points")
	ErrBelowMinimumWithdrawal    = errors.New("withdrawal below minimum")
	ErrInvalidWithdrawAmount     = errors.New("invalid withdrawal amount")
	ErrInvalidPayoutMethod       = errors.New("invalid payout method")
	ErrInvalidWalletNumber       = errors.New("invalid wallet number")
	ErrWithdrawNotFound          = errors.New("withdraw request not found")
	ErrWithdrawAlreadyProcessed  = errors.New("withdraw request already processed")
	ErrCommissionAlreadyCredited = errors.New("commission already credited")
)

// Ошибки промокодов
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponExists        = errors.New("coupon already exists")
	ErrCouponInvalid       = errors.New("invalid coupon")
	ErrCouponExpired       = errors.New("coupon expired")
	ErrCouponNotApplicable = errors.New("coupon not applicable to cart items")
	ErrInvalidPercentage   = errors.New("percentage must be in (0, 100]")
)
