package app

import (
	"github.com/avc/shopvely/internal/handlers"
	"github.com/avc/shopvely/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, h, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.MetricsMiddleware)
	r.Use(handlers.ReferralMiddleware)
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager) {
	// Health check и метрики
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Публичные эндпоинты
	r.Post("/api/user/register", h.auth.Register)
	r.Post("/api/user/login", h.auth.Login)

	// Корзина и оформление доступны гостям
	r.Group(func(r chi.Router) {
		r.Use(handlers.OptionalAuthMiddleware(jwtManager))

		r.Route("/api/cart", func(r chi.Router) {
			r.Get("/", h.cart.Get)
			r.Delete("/", h.cart.Clear)
			r.Post("/items", h.cart.AddItem)
			r.Put("/items/{productID}", h.cart.UpdateQuantity)
			r.Delete("/items/{productID}", h.cart.RemoveItem)
			r.Post("/coupon", h.cart.ApplyCoupon)
			r.Delete("/coupon", h.cart.RemoveCoupon)
		})
		r.Post("/api/checkout", h.checkout.PlaceOrder)
	})

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Get("/api/user/orders", h.orders.GetOrders)
		r.Get("/api/user/loyalty", h.loyalty.GetStats)
		r.Get("/api/user/loyalty/transactions", h.loyalty.GetTransactions)
		r.Post("/api/user/withdrawals", h.withdraw.Submit)
		r.Get("/api/user/withdrawals", h.withdraw.ListOwn)
	})

	// Администрирование
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.AdminMiddleware)

		r.Get("/orders", h.orders.ListOrders)
		r.Patch("/orders/{orderID}/status", h.orders.UpdateStatus)

		r.Get("/withdrawals", h.withdraw.ListAll)
		r.Post("/withdrawals/{id}/approve", h.withdraw.Approve)
		r.Post("/withdrawals/{id}/reject", h.withdraw.Reject)

		r.Get("/coupons", h.coupons.List)
		r.Post("/coupons", h.coupons.Create)
		r.Patch("/coupons/{code}/toggle", h.coupons.Toggle)
		r.Delete("/coupons/{code}", h.coupons.Delete)
	})
}
