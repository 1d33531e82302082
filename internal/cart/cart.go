// Package cart содержит корзину покупателя и расчет скидки по промокоду.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item представляет позицию корзины
type Item struct {
	ProductID    uuid.UUID       `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	SelectedSize string          `json:"selected_size,omitempty"`
}

// LineTotal возвращает стоимость позиции
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart представляет корзину с примененным промокодом.
// Скидка хранится одним числом и заменяется при применении нового купона.
type Cart struct {
	Items         []Item          `json:"items"`
	AppliedCoupon string          `json:"applied_coupon,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
}

// New создает пустую корзину
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Clone возвращает независимую копию корзины
func (c *Cart) Clone() *Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return &Cart{
		Items:         items,
		AppliedCoupon: c.AppliedCoupon,
		Discount:      c.Discount,
	}
}

// Add добавляет товар, объединяя позиции с тем же товаром и размером
func (c *Cart) Add(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].SelectedSize == item.SelectedSize {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove удаляет все позиции товара независимо от размера
func (c *Cart) Remove(productID uuid.UUID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.resetIfEmpty()
}

// UpdateQuantity меняет количество; значение меньше 1 удаляет товар
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
		}
	}
}

// Clear очищает корзину и сбрасывает промокод
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.RemoveCoupon()
}

// RemoveCoupon сбрасывает скидку и промокод
func (c *Cart) RemoveCoupon() {
	c.Discount = decimal.Zero
	c.AppliedCoupon = ""
}

// SetCoupon фиксирует рассчитанную скидку, заменяя предыдущую
func (c *Cart) SetCoupon(code string, discount decimal.Decimal) {
	c.AppliedCoupon = code
	c.Discount = discount
}

// IsEmpty сообщает, что в корзине нет позиций
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal возвращает сумму позиций без скидки
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalItems возвращает общее количество единиц товара
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Payable возвращает сумму к оплате без доставки, не меньше нуля
func (c *Cart) Payable() decimal.Decimal {
	return decimal.Max(decimal.Zero, c.Subtotal().Sub(c.Discount))
}

func (c *Cart) resetIfEmpty() {
	if c.IsEmpty() {
		c.RemoveCoupon()
	}
}
