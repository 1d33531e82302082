package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/shopvely/internal/cart"
	"github.com/avc/shopvely/internal/domain"
	handlermocks "github.com/avc/shopvely/internal/handlers/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleCart(productID uuid.UUID, quantity int) *cart.Cart {
	c := cart.New()
	c.Add(cart.Item{ProductID: productID, Name: "Panjabi", Price: decimal.NewFromInt(1000), Quantity: quantity})
	return c
}

func TestResolveOwner(t *testing.T) {
	t.Run("Signed-in user wins over guest header", func(t *testing.T) {
		user := customer()
		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/cart", nil), user)
		req.Header.Set(GuestHeader, uuid.NewString())

		owner, ok := resolveOwner(req)
		require.True(t, ok)
		assert.False(t, owner.IsGuest())
		assert.Equal(t, user.UserID, *owner.UserID)
	})

	t.Run("Guest header", func(t *testing.T) {
		guestID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(GuestHeader, guestID.String())

		owner, ok := resolveOwner(req)
		require.True(t, ok)
		assert.Equal(t, cart.GuestOwner(guestID.String()), owner)
	})

	t.Run("Malformed guest id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(GuestHeader, "cart:*")

		_, ok := resolveOwner(req)
		assert.False(t, ok)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	mockService := handlermocks.NewCartServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCartHandler(mockService, logger)
	user := customer()
	owner := cart.UserOwner(user.UserID)
	productID := uuid.New()
	body := fmt.Sprintf(`{"product_id":%q,"quantity":2,"selected_size":"L"}`, productID)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().AddItem(mock.Anything, owner, productID, 2, "L").Return(sampleCart(productID, 2), nil).Once()

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(body)), user)
		w := httptest.NewRecorder()

		handler.AddItem(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var result cartResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, 2, result.TotalItems)
		assert.True(t, decimal.NewFromInt(2000).Equal(result.Subtotal))
		assert.True(t, decimal.NewFromInt(2000).Equal(result.Payable))
	})

	t.Run("Sync failure returns reverted cart", func(t *testing.T) {
		mockService.EXPECT().AddItem(mock.Anything, owner, productID, 2, "L").
			Return(sampleCart(productID, 1), fmt.Errorf("%w: boom", cart.ErrSyncFailed)).Once()

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(body)), user)
		w := httptest.NewRecorder()

		handler.AddItem(w, req)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var result struct {
			Error string       `json:"error"`
			Cart  cartResponse `json:"cart"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.NotEmpty(t, result.Error)
		assert.Equal(t, 1, result.Cart.TotalItems)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockService.EXPECT().AddItem(mock.Anything, owner, productID, 2, "L").Return(nil, domain.ErrProductNotFound).Once()

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(body)), user)
		w := httptest.NewRecorder()

		handler.AddItem(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Missing product id", func(t *testing.T) {
		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewBufferString(`{"quantity":1}`)), user)
		w := httptest.NewRecorder()

		handler.AddItem(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_ApplyCoupon(t *testing.T) {
	mockService := handlermocks.NewCartServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCartHandler(mockService, logger)
	guestID := uuid.New()
	owner := cart.GuestOwner(guestID.String())
	productID := uuid.New()

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/coupon", bytes.NewBufferString(body))
		req.Header.Set(GuestHeader, guestID.String())
		return req
	}

	t.Run("Applied", func(t *testing.T) {
		c := sampleCart(productID, 1)
		c.SetCoupon("SAVE10", decimal.NewFromInt(100))
		mockService.EXPECT().ApplyCoupon(mock.Anything, owner, "save10").Return(c, nil).Once()

		w := httptest.NewRecorder()
		handler.ApplyCoupon(w, newRequest(`{"code":"save10"}`))
		assert.Equal(t, http.StatusOK, w.Code)

		var result cartResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, "SAVE10", result.AppliedCoupon)
		assert.True(t, decimal.NewFromInt(900).Equal(result.Payable))
	})

	t.Run("Expired", func(t *testing.T) {
		mockService.EXPECT().ApplyCoupon(mock.Anything, owner, "old").Return(nil, domain.ErrCouponExpired).Once()

		w := httptest.NewRecorder()
		handler.ApplyCoupon(w, newRequest(`{"code":"old"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "coupon expired")
	})
}

func TestCartHandler_UpdateAndRemove(t *testing.T) {
	mockService := handlermocks.NewCartServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCartHandler(mockService, logger)
	user := customer()
	owner := cart.UserOwner(user.UserID)
	productID := uuid.New()

	t.Run("Update quantity", func(t *testing.T) {
		mockService.EXPECT().UpdateQuantity(mock.Anything, owner, productID, 3).Return(sampleCart(productID, 3), nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/"+productID.String(), bytes.NewBufferString(`{"quantity":3}`))
		req = withURLParam(withIdentity(req, user), "productID", productID.String())
		w := httptest.NewRecorder()

		handler.UpdateQuantity(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Remove item", func(t *testing.T) {
		mockService.EXPECT().RemoveItem(mock.Anything, owner, productID).Return(cart.New(), nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/"+productID.String(), nil)
		req = withURLParam(withIdentity(req, user), "productID", productID.String())
		w := httptest.NewRecorder()

		handler.RemoveItem(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_items":0`)
	})

	t.Run("Clear", func(t *testing.T) {
		mockService.EXPECT().Clear(mock.Anything, owner).Return(cart.New(), nil).Once()

		req := withIdentity(httptest.NewRequest(http.MethodDelete, "/api/cart", nil), user)
		w := httptest.NewRecorder()

		handler.Clear(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bad product id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/abc", nil)
		req = withURLParam(withIdentity(req, user), "productID", "abc")
		w := httptest.NewRecorder()

		handler.RemoveItem(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
