package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CouponHandler struct {
	couponService domain.CouponService
	logger        *zap.Logger
}

func NewCouponHandler(couponService domain.CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		logger:        logger,
	}
}

type createCouponRequest struct {
	Code       string          `json:"code"`
	Percentage decimal.Decimal `json:"percentage"`
	ExpiryDate string          `json:"expiry_date"` // YYYY-MM-DD
	ProductIDs []uuid.UUID     `json:"product_ids"`
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	expiry, err := time.Parse(time.DateOnly, req.ExpiryDate)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "expiry_date must be YYYY-MM-DD")
		return
	}

	coupon, err := h.couponService.Create(r.Context(), domain.CouponInput{
		Code:       req.Code,
		Percentage: req.Percentage,
		ExpiryDate: expiry,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponExists):
			writeError(w, h.logger, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPercentage):
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create coupon", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, coupon)
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list coupons", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if coupons == nil {
		coupons = []*domain.Coupon{}
	}
	writeJSON(w, h.logger, http.StatusOK, coupons)
}

func (h *CouponHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.couponService.Toggle(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to toggle coupon", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, coupon)
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.couponService.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		if errors.Is(err, domain.ErrCouponNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete coupon", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
