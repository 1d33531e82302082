package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/shopvely/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type statusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// GetOrders возвращает заказы текущего пользователя
func (h *OrdersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("failed to get orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

// ListOrders возвращает заказы для администратора с фильтром ?status=
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	filter := domain.OrderFilter{
		Status: domain.OrderStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		filter.CustomerID = &customerID
	}

	orders, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrderStatus) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to list orders", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if orders == nil {
		orders = []*domain.Order{}
	}
	writeJSON(w, h.logger, http.StatusOK, orders)
}

// UpdateStatus меняет статус заказа.
// Ошибка начисления комиссии не отменяет смену статуса и возвращается в поле loyalty_error.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	change, err := h.orderService.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrderStatus):
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrOrderNotFound):
			writeError(w, h.logger, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrOrderAlreadyComplete):
			writeError(w, h.logger, http.StatusConflict, "Order already DEAL_COMPLETE")
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			writeError(w, h.logger, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to update order status",
				zap.String("order_id", orderID.String()),
				zap.Error(err),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, change)
}
