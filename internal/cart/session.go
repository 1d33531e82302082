package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/google/uuid"
)

// ErrSyncFailed возвращается, когда изменение корзины не удалось сохранить.
// Корзина при этом возвращается в состояние до изменения.
var ErrSyncFailed = errors.New("cart: failed to persist changes")

// ErrInvalidQuantity возвращается при добавлении нулевого или отрицательного количества
var ErrInvalidQuantity = errors.New("cart: quantity must be positive")

// Owner идентифицирует владельца корзины: пользователя или гостя
type Owner struct {
	UserID  *uuid.UUID
	GuestID string
}

// UserOwner создает владельца для авторизованного пользователя
func UserOwner(id uuid.UUID) Owner {
	return Owner{UserID: &id}
}

// GuestOwner создает владельца для гостя
func GuestOwner(guestID string) Owner {
	return Owner{GuestID: guestID}
}

// IsGuest сообщает, что корзина принадлежит гостю
func (o Owner) IsGuest() bool {
	return o.UserID == nil
}

func (o Owner) String() string {
	if o.UserID != nil {
		return "user:" + o.UserID.String()
	}
	return "guest:" + o.GuestID
}

// Store определяет хранилище корзин
type Store interface {
	Load(ctx context.Context, owner Owner) (*Cart, error)
	Save(ctx context.Context, owner Owner, c *Cart) error
	Delete(ctx context.Context, owner Owner) error
}

// Command изменяет корзину. При ошибке корзина не должна считаться измененной.
type Command interface {
	Apply(c *Cart) error
}

// CommandFunc адаптирует функцию к Command
type CommandFunc func(c *Cart) error

// Apply вызывает f(c)
func (f CommandFunc) Apply(c *Cart) error {
	return f(c)
}

// AddItem добавляет товар в корзину
func AddItem(item Item) Command {
	return CommandFunc(func(c *Cart) error {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		c.Add(item)
		return nil
	})
}

// RemoveItem удаляет товар из корзины
func RemoveItem(productID uuid.UUID) Command {
	return CommandFunc(func(c *Cart) error {
		c.Remove(productID)
		return nil
	})
}

// SetQuantity меняет количество товара
func SetQuantity(productID uuid.UUID, quantity int) Command {
	return CommandFunc(func(c *Cart) error {
		c.UpdateQuantity(productID, quantity)
		return nil
	})
}

// ClearItems очищает корзину
func ClearItems() Command {
	return CommandFunc(func(c *Cart) error {
		c.Clear()
		return nil
	})
}

// ApplyCoupon рассчитывает скидку и заменяет ранее примененный купон
func ApplyCoupon(coupon *domain.Coupon, now time.Time) Command {
	return CommandFunc(func(c *Cart) error {
		discount, err := Evaluate(coupon, c.Items, now)
		if err != nil {
			return err
		}
		c.SetCoupon(coupon.Code, discount)
		return nil
	})
}

// DropCoupon снимает примененный купон
func DropCoupon() Command {
	return CommandFunc(func(c *Cart) error {
		c.RemoveCoupon()
		return nil
	})
}

// Session применяет команды к корзине и синхронизирует ее с хранилищем
type Session struct {
	owner Owner
	store Store
	cart  *Cart
}

// NewSession создает сессию для загруженной корзины
func NewSession(owner Owner, store Store, current *Cart) *Session {
	if current == nil {
		current = New()
	}
	return &Session{
		owner: owner,
		store: store,
		cart:  current,
	}
}

// Cart возвращает текущее состояние корзины
func (s *Session) Cart() *Cart {
	return s.cart
}

// Do применяет команду сразу, затем сохраняет корзину.
// Если команда или сохранение завершились ошибкой, восстанавливается снимок.
func (s *Session) Do(ctx context.Context, cmd Command) error {
	snapshot := s.cart.Clone()

	if err := cmd.Apply(s.cart); err != nil {
		s.cart = snapshot
		return err
	}

	if err := s.store.Save(ctx, s.owner, s.cart); err != nil {
		s.cart = snapshot
		return fmt.Errorf("%w: %s: %w", ErrSyncFailed, s.owner, err)
	}

	return nil
}
