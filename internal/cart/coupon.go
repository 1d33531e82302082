package cart

import (
	"strings"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// NormalizeCode приводит промокод к каноническому виду
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Expired сообщает, что дата окончания купона раньше текущего дня по UTC.
// Дата окончания хранится как дата без времени.
func Expired(coupon *domain.Coupon, now time.Time) bool {
	today := now.UTC().Format(time.DateOnly)
	return coupon.ExpiryDate.Format(time.DateOnly) < today
}

// Evaluate проверяет купон и рассчитывает скидку для позиций корзины.
// Купон с ограничением по товарам применяется только к подходящим позициям.
// Скидка округляется до сотых, как и все денежные колонки заказа.
func Evaluate(coupon *domain.Coupon, items []Item, now time.Time) (decimal.Decimal, error) {
	if coupon == nil || !coupon.IsActive {
		return decimal.Zero, domain.ErrCouponInvalid
	}
	if Expired(coupon, now) {
		return decimal.Zero, domain.ErrCouponExpired
	}

	base := decimal.Zero
	if coupon.Restricted() {
		eligible := make(map[uuid.UUID]struct{}, len(coupon.ProductIDs))
		for _, id := range coupon.ProductIDs {
			eligible[id] = struct{}{}
		}
		for _, item := range items {
			if _, ok := eligible[item.ProductID]; ok {
				base = base.Add(item.LineTotal())
			}
		}
		if base.IsZero() {
			return decimal.Zero, domain.ErrCouponNotApplicable
		}
	} else {
		for _, item := range items {
			base = base.Add(item.LineTotal())
		}
	}

	return base.Mul(coupon.Percentage).Div(hundred).Round(2), nil
}
