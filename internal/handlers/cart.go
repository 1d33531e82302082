package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GuestHeader идентифицирует корзину гостя
const GuestHeader = "X-Guest-ID"

// CartService определяет операции над корзиной
type CartService interface {
	Get(ctx context.Context, owner cart.Owner) (*cart.Cart, error)
	AddItem(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int, size string) (*cart.Cart, error)
	UpdateQuantity(ctx context.Context, owner cart.Owner, productID uuid.UUID, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, owner cart.Owner, productID uuid.UUID) (*cart.Cart, error)
	Clear(ctx context.Context, owner cart.Owner) (*cart.Cart, error)
	ApplyCoupon(ctx context.Context, owner cart.Owner, code string) (*cart.Cart, error)
	RemoveCoupon(ctx context.Context, owner cart.Owner) (*cart.Cart, error)
}

type CartHandler struct {
	cartService CartService
	logger      *zap.Logger
}

func NewCartHandler(cartService CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

type cartResponse struct {
	Items         []cart.Item     `json:"items"`
	AppliedCoupon string          `json:"applied_coupon,omitempty"`
	Discount      decimal.Decimal `json:"discount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Payable       decimal.Decimal `json:"payable"`
	TotalItems    int             `json:"total_items"`
}

func newCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:         c.Items,
		AppliedCoupon: c.AppliedCoupon,
		Discount:      c.Discount,
		Subtotal:      c.Subtotal(),
		Payable:       c.Payable(),
		TotalItems:    c.TotalItems(),
	}
}

type addItemRequest struct {
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `json:"quantity"`
	SelectedSize string    `json:"selected_size"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type couponRequest struct {
	Code string `json:"code"`
}

// resolveOwner определяет владельца корзины: пользователь из токена или гость по заголовку
func resolveOwner(r *http.Request) (cart.Owner, bool) {
	if identity, ok := GetIdentity(r.Context()); ok {
		return cart.UserOwner(identity.UserID), true
	}

	guestID, err := uuid.Parse(r.Header.Get(GuestHeader))
	if err != nil {
		return cart.Owner{}, false
	}

	return cart.GuestOwner(guestID.String()), true
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
		return h.cartService.Get(ctx, owner)
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == uuid.Nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	h.serve(w, r, func(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
		return h.cartService.AddItem(ctx, owner, req.ProductID, req.Quantity, req.SelectedSize)
	})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.serve(w, r, func(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
		return h.cartService.UpdateQuantity(ctx, owner, productID, req.Quantity)
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.serve(w, r, func(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
		return h.cartService.RemoveItem(ctx, owner, productID)
	})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.cartService.Clear)
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.serve(w, r, func(ctx context.Context, owner cart.Owner) (*cart.Cart, error) {
		return h.cartService.ApplyCoupon(ctx, owner, req.Code)
	})
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.cartService.RemoveCoupon)
}

// serve определяет владельца, выполняет операцию и переводит ошибки в HTTP статусы.
// При сбое сохранения клиент получает восстановленную корзину вместе со статусом 503.
func (h *CartHandler) serve(w http.ResponseWriter, r *http.Request, op func(context.Context, cart.Owner) (*cart.Cart, error)) {
	owner, ok := resolveOwner(r)
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, GuestHeader+" header required for guest cart")
		return
	}

	c, err := op(r.Context(), owner)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrSyncFailed) && c != nil:
			writeJSON(w, h.logger, http.StatusServiceUnavailable, map[string]any{
				"error": "cart changes could not be saved, please retry",
				"cart":  newCartResponse(c),
			})
		case errors.Is(err, cart.ErrInvalidQuantity):
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrProductNotFound):
			writeError(w, h.logger, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrCouponInvalid),
			errors.Is(err, domain.ErrCouponExpired),
			errors.Is(err, domain.ErrCouponNotApplicable):
			writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("cart operation failed", zap.String("owner", owner.String()), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, newCartResponse(c))
}
