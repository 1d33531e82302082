package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionCredit описывает начисление реферальной комиссии
type CommissionCredit struct {
	OrderID    uuid.UUID
	ReferrerID uuid.UUID
	CustomerID uuid.UUID
	Points     int64
	TkAmount   decimal.Decimal
}

// ProfileRepository определяет методы для работы с профилями
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *Profile) (*Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
	GetProfileByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetProfileByReferralCode(ctx context.Context, code string) (*Profile, error)
}

// ProductRepository определяет чтение каталога
type ProductRepository interface {
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Product, error)
}

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (bool, error)
	MarkCommissionSettled(ctx context.Context, id uuid.UUID) error
	GetUnsettledOrderIDs(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// LedgerRepository определяет методы журнала лояльности
type LedgerRepository interface {
	CreditReferralCommission(ctx context.Context, credit CommissionCredit) error
	GetStats(ctx context.Context, userID uuid.UUID) (*LoyaltyStats, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*LoyaltyTransaction, error)
}

// WithdrawRepository определяет методы для работы с заявками на вывод
type WithdrawRepository interface {
	CreateWithdrawRequest(ctx context.Context, userID uuid.UUID, input WithdrawInput, withdrawTk decimal.Decimal) (*WithdrawRequest, error)
	ApproveWithdrawRequest(ctx context.Context, id, adminID uuid.UUID) (*WithdrawRequest, error)
	RejectWithdrawRequest(ctx context.Context, id, adminID uuid.UUID, note string) (*WithdrawRequest, error)
	ListWithdrawRequests(ctx context.Context, filter WithdrawFilter) ([]*WithdrawRequest, error)
}

// CouponRepository определяет методы для работы с промокодами
type CouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *Coupon) (*Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]*Coupon, error)
	ToggleCoupon(ctx context.Context, code string) (*Coupon, error)
	DeleteCoupon(ctx context.Context, code string) error
}

// EventPublisher публикует события лояльности во внешние системы
type EventPublisher interface {
	Publish(ctx context.Context, event LoyaltyEvent) error
}

// AuthService определяет регистрацию и вход
type AuthService interface {
	Register(ctx context.Context, reg Registration) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// CommissionService начисляет реферальную комиссию по завершенному заказу
type CommissionService interface {
	Settle(ctx context.Context, order *Order) (*CommissionResult, error)
}

// OrderService определяет работу с заказами
type OrderService interface {
	GetOrders(ctx context.Context, userID uuid.UUID) ([]*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus) (*StatusChange, error)
}

// LoyaltyService определяет чтение кошелька
type LoyaltyService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*LoyaltyStats, error)
	GetTransactions(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*LoyaltyTransaction, error)
}

// WithdrawService определяет вывод баллов
type WithdrawService interface {
	Submit(ctx context.Context, userID uuid.UUID, input WithdrawInput) (*WithdrawRequest, error)
	Approve(ctx context.Context, id, adminID uuid.UUID) (*WithdrawRequest, error)
	Reject(ctx context.Context, id, adminID uuid.UUID, note string) (*WithdrawRequest, error)
	List(ctx context.Context, filter WithdrawFilter) ([]*WithdrawRequest, error)
}

// CouponService определяет управление промокодами
type CouponService interface {
	Create(ctx context.Context, input CouponInput) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
	Toggle(ctx context.Context, code string) (*Coupon, error)
	Delete(ctx context.Context, code string) error
}
