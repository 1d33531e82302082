package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role представляет роль пользователя
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusProcessing   OrderStatus = "Processing"
	OrderStatusShipped      OrderStatus = "Shipped"
	OrderStatusDelivered    OrderStatus = "Delivered"
	OrderStatusCancelled    OrderStatus = "Cancelled"
	OrderStatusDealComplete OrderStatus = "DEAL_COMPLETE"
)

// Valid проверяет, что статус входит в допустимый набор
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusDealComplete:
		return true
	}
	return false
}

// TransactionType представляет тип записи в журнале лояльности
type TransactionType string

const (
	TransactionTypeEarnReferral           TransactionType = "EARN_REFERRAL"
	TransactionTypeWithdrawRequest        TransactionType = "WITHDRAW_REQUEST"
	TransactionTypeWithdrawCompleted      TransactionType = "WITHDRAW_COMPLETED"
	TransactionTypeWithdrawRejectedRefund TransactionType = "WITHDRAW_REJECTED_REFUND"
)

// WithdrawStatus представляет статус заявки на вывод
type WithdrawStatus string

const (
	WithdrawStatusProcessing WithdrawStatus = "PROCESSING"
	WithdrawStatusCompleted  WithdrawStatus = "COMPLETED"
	WithdrawStatusRejected   WithdrawStatus = "REJECTED"
)

// PayoutMethod представляет платежную систему для вывода
type PayoutMethod string

const (
	PayoutMethodBkash PayoutMethod = "BKASH"
	PayoutMethodNagad PayoutMethod = "NAGAD"
)

// Valid проверяет поддерживаемую платежную систему
func (m PayoutMethod) Valid() bool {
	return m == PayoutMethodBkash || m == PayoutMethodNagad
}

// PaymentMethod представляет способ оплаты заказа
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCard   PaymentMethod = "card"
)

// Profile представляет пользователя магазина
type Profile struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"` // Не отправляем хеш в JSON
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone,omitempty"`
	Role             Role       `json:"role"`
	LoyaltyPoints    int64      `json:"loyalty_points"`
	ReferralCode     string     `json:"referral_code"`
	ReferredByUserID *uuid.UUID `json:"referred_by_user_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// Product представляет товар каталога (только чтение)
type Product struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	IsActive bool            `json:"is_active"`
}

// ShippingAddress представляет адрес доставки
type ShippingAddress struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Village    string `json:"village"`
	PostalCode string `json:"postalCode"`
}

// Complete проверяет заполненность обязательных полей
func (a ShippingAddress) Complete() bool {
	return a.Name != "" && a.Phone != "" && a.Address != "" &&
		a.City != "" && a.Village != "" && a.PostalCode != ""
}

// OrderItem представляет позицию заказа
type OrderItem struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    *uuid.UUID      `json:"product_id,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SelectedSize string          `json:"selected_size,omitempty"`
}

// LineTotal возвращает стоимость позиции
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order представляет заказ
type Order struct {
	ID                  uuid.UUID       `json:"id"`
	CustomerID          *uuid.UUID      `json:"customer_id,omitempty"` // nil для гостевого заказа
	CustomerName        string          `json:"customer"`
	Status              OrderStatus     `json:"status"`
	Items               []OrderItem     `json:"items"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	Discount            decimal.Decimal `json:"discount"`
	ShippingFee         decimal.Decimal `json:"shipping_fee"`
	Total               decimal.Decimal `json:"total"`
	CouponCode          string          `json:"coupon_code,omitempty"`
	ShippingAddress     ShippingAddress `json:"shipping_address"`
	PaymentMethod       PaymentMethod   `json:"payment_method"`
	TransactionID       string          `json:"transaction_id,omitempty"`
	CommissionSettledAt *time.Time      `json:"commission_settled_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsGuest сообщает, что заказ оформлен без аккаунта
func (o *Order) IsGuest() bool {
	return o.CustomerID == nil
}

// LoyaltyTransaction представляет запись журнала лояльности (только добавление)
type LoyaltyTransaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Type      TransactionType `json:"type"`
	Points    int64           `json:"points"` // Со знаком: списания отрицательные
	TkAmount  decimal.Decimal `json:"tk_amount"`
	OrderID   *uuid.UUID      `json:"order_id,omitempty"`
	Meta      map[string]any  `json:"meta_json,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// WithdrawRequest представляет заявку на вывод баллов
type WithdrawRequest struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	PointsAmount       int64           `json:"points_amount"`
	WithdrawTk         decimal.Decimal `json:"withdraw_tk"`
	Method             PayoutMethod    `json:"method"`
	Number             string          `json:"number"`
	Status             WithdrawStatus  `json:"status"`
	Note               string          `json:"note,omitempty"`
	ProcessedByAdminID *uuid.UUID      `json:"processed_by_admin_id,omitempty"`
	ProcessedAt        *time.Time      `json:"processed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Coupon представляет промокод
type Coupon struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Percentage decimal.Decimal `json:"percentage"`
	ExpiryDate time.Time       `json:"expiry_date"`
	IsActive   bool            `json:"is_active"`
	ProductIDs []uuid.UUID     `json:"product_ids,omitempty"` // Пусто - скидка на всю корзину
	CreatedAt  time.Time       `json:"created_at"`
}

// Restricted сообщает, что купон действует только на часть товаров
func (c *Coupon) Restricted() bool {
	return len(c.ProductIDs) > 0
}

// LoyaltyStats представляет сводку кошелька пользователя
type LoyaltyStats struct {
	PointsBalance     int64  `json:"points_balance"`
	TotalEarned       int64  `json:"total_earned"`
	TotalWithdrawn    int64  `json:"total_withdrawn"`
	PendingWithdrawal int64  `json:"pending_withdrawal"`
	ReferralCode      string `json:"referral_code"`
}

// CommissionResult описывает итог начисления реферальной комиссии
type CommissionResult struct {
	OrderID    uuid.UUID       `json:"order_id"`
	ReferrerID *uuid.UUID      `json:"referrer_id,omitempty"`
	Points     int64           `json:"points"`
	TkAmount   decimal.Decimal `json:"tk_amount"`
	Credited   bool            `json:"credited"`
	SkipReason string          `json:"skip_reason,omitempty"`
}

// StatusChange описывает результат смены статуса заказа
type StatusChange struct {
	Order        *Order            `json:"order"`
	Commission   *CommissionResult `json:"commission,omitempty"`
	LoyaltyError string            `json:"loyalty_error,omitempty"`
}

// Registration содержит данные регистрации
type Registration struct {
	Email        string
	Password     string
	FullName     string
	Phone        string
	ReferralCode string
}

// CheckoutInput содержит данные оформления заказа
type CheckoutInput struct {
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	TransactionID   string
}

// WithdrawInput содержит данные заявки на вывод
type WithdrawInput struct {
	Points int64
	Method PayoutMethod
	Number string
}

// CouponInput содержит данные для создания промокода
type CouponInput struct {
	Code       string
	Percentage decimal.Decimal
	ExpiryDate time.Time
	ProductIDs []uuid.UUID
}

// OrderFilter задает фильтр списка заказов
type OrderFilter struct {
	Status     OrderStatus
	CustomerID *uuid.UUID
	Limit      uint64
	Offset     uint64
}

// WithdrawFilter задает фильтр списка заявок на вывод
type WithdrawFilter struct {
	Status WithdrawStatus
	UserID *uuid.UUID
	Limit  uint64
	Offset uint64
}

// TransactionFilter задает фильтр журнала лояльности
type TransactionFilter struct {
	Type  TransactionType
	Limit uint64
}

// LoyaltyEvent публикуется после изменения кошелька
type LoyaltyEvent struct {
	Type       string          `json:"type"`
	UserID     uuid.UUID       `json:"user_id"`
	Points     int64           `json:"points"`
	TkAmount   decimal.Decimal `json:"tk_amount"`
	OrderID    *uuid.UUID      `json:"order_id,omitempty"`
	RequestID  *uuid.UUID      `json:"request_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Типы событий лояльности
const (
	EventCommissionCredited = "commission.credited"
	EventWithdrawRequested  = "withdraw.requested"
	EventWithdrawCompleted  = "withdraw.completed"
	EventWithdrawRejected   = "withdraw.rejected"
)
