package loyalty

import (
	"github.com/avc/shopvely/internal/domain"
	"github.com/shopspring/decimal"
)

// Commission рассчитывает комиссию реферера по позициям заказа.
// Баллы округляются до ближайшего целого, половина в большую сторону.
func (r Rules) Commission(items []domain.OrderItem) (decimal.Decimal, int64) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	tk := total.Mul(r.CommissionRate)
	points := tk.Mul(decimal.NewFromInt(r.PointsPerTaka)).Round(0).IntPart()

	return tk, points
}

// PointsToTaka переводит баллы в taka для выплаты
func (r Rules) PointsToTaka(points int64) decimal.Decimal {
	return decimal.NewFromInt(points).Div(decimal.NewFromInt(r.PointsPerTaka))
}

// ShippingFor возвращает стоимость доставки для суммы к оплате
func (r Rules) ShippingFor(payable decimal.Decimal) decimal.Decimal {
	if payable.GreaterThanOrEqual(r.FreeShippingThreshold) {
		return decimal.Zero
	}
	return r.ShippingFee
}
