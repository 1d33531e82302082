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

type WithdrawHandler struct {
	withdrawService domain.WithdrawService
	logger          *zap.Logger
}

func NewWithdrawHandler(withdrawService domain.WithdrawService, logger *zap.Logger) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawService: withdrawService,
		logger:          logger,
	}
}

type withdrawRequest struct {
	Points int64               `json:"points"`
	Method domain.PayoutMethod `json:"method"`
	Number string              `json:"number"`
}

type rejectRequest struct {
	Note string `json:"note"`
}

// Submit создает заявку на вывод баллов текущего пользователя
func (h *WithdrawHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	request, err := h.withdrawService.Submit(r.Context(), identity.UserID, domain.WithdrawInput{
		Points: req.Points,
		Method: req.Method,
		Number: req.Number,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientPoints):
			writeError(w, h.logger, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrInvalidWithdrawAmount),
			errors.Is(err, domain.ErrBelowMinimumWithdrawal),
			errors.Is(err, domain.ErrInvalidPayoutMethod),
			errors.Is(err, domain.ErrInvalidWalletNumber):
			writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			h.logger.Error("failed to submit withdrawal", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, request)
}

// ListOwn возвращает заявки текущего пользователя
func (h *WithdrawHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, offset := pagination(r)
	h.list(w, r, domain.WithdrawFilter{UserID: &identity.UserID, Limit: limit, Offset: offset})
}

// ListAll возвращает заявки для администратора с фильтром ?status=
func (h *WithdrawHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	h.list(w, r, domain.WithdrawFilter{
		Status: domain.WithdrawStatus(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	})
}

func (h *WithdrawHandler) list(w http.ResponseWriter, r *http.Request, filter domain.WithdrawFilter) {
	requests, err := h.withdrawService.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list withdrawals", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, requests)
}

// Approve подтверждает выплату
func (h *WithdrawHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(id, adminID uuid.UUID) (*domain.WithdrawRequest, error) {
		return h.withdrawService.Approve(r.Context(), id, adminID)
	})
}

// Reject отклоняет заявку с необязательным комментарием
func (h *WithdrawHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	}

	h.decide(w, r, func(id, adminID uuid.UUID) (*domain.WithdrawRequest, error) {
		return h.withdrawService.Reject(r.Context(), id, adminID, req.Note)
	})
}

func (h *WithdrawHandler) decide(w http.ResponseWriter, r *http.Request, op func(id, adminID uuid.UUID) (*domain.WithdrawRequest, error)) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	request, err := op(id, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWithdrawNotFound):
			writeError(w, h.logger, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrWithdrawAlreadyProcessed):
			writeError(w, h.logger, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to process withdrawal",
				zap.String("request_id", id.String()),
				zap.Error(err),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, h.logger, http.StatusOK, request)
}
