package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	"go.uber.org/zap"
)

// CheckoutService оформляет заказ из корзины
type CheckoutService interface {
	PlaceOrder(ctx context.Context, owner cart.Owner, input domain.CheckoutInput) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	logger          *zap.Logger
}

func NewCheckoutHandler(checkoutService CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

type checkoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	PaymentMethod   domain.PaymentMethod   `json:"payment_method"`
	TransactionID   string                 `json:"transaction_id"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	owner, ok := resolveOwner(r)
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, GuestHeader+" header required for guest checkout")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	order, err := h.checkoutService.PlaceOrder(r.Context(), owner, domain.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidShipping),
			errors.Is(err, domain.ErrInvalidPayment),
			errors.Is(err, domain.ErrEmptyCart):
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrProductNotFound),
			errors.Is(err, domain.ErrCouponInvalid),
			errors.Is(err, domain.ErrCouponExpired),
			errors.Is(err, domain.ErrCouponNotApplicable):
			writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.Error("failed to place order", zap.String("owner", owner.String()), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}
