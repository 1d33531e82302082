package handlers

import (
	"errors"
	"net/http"

	"github.com/avc/shopvely/internal/domain"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	loyaltyService domain.LoyaltyService
	logger         *zap.Logger
}

func NewLoyaltyHandler(loyaltyService domain.LoyaltyService, logger *zap.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyService: loyaltyService,
		logger:         logger,
	}
}

func (h *LoyaltyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.loyaltyService.GetStats(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get loyalty stats", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, stats)
}

func (h *LoyaltyHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := pagination(r)
	transactions, err := h.loyaltyService.GetTransactions(r.Context(), identity.UserID, domain.TransactionFilter{
		Type:  domain.TransactionType(r.URL.Query().Get("type")),
		Limit: limit,
	})
	if err != nil {
		h.logger.Error("failed to get loyalty transactions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, transactions)
}
