// Package metrics содержит метрики Prometheus сервиса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopvely_http_requests_total",
			Help: "Кол-во HTTP запросов",
		},
		[]string{"route", "method", "code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shopvely_http_request_duration_seconds",
			Help:    "Продолжительность HTTP запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	commissionsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopvely_commissions_credited_total",
			Help: "Кол-во начисленных реферальных комиссий",
		},
	)

	commissionPoints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopvely_commission_points_total",
			Help: "Сумма начисленных реферальных баллов",
		},
	)

	commissionsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopvely_commissions_skipped_total",
			Help: "Кол-во заказов без начисления комиссии",
		},
		[]string{"reason"},
	)

	withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopvely_withdrawals_total",
			Help: "Кол-во заявок на вывод по статусам",
		},
		[]string{"status"},
	)

	couponApplications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopvely_coupon_applications_total",
			Help: "Кол-во попыток применить промокод",
		},
		[]string{"outcome"},
	)

	settlementQueueDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shopvely_settlement_queue_dropped_total",
			Help: "Кол-во заказов, не попавших в переполненную очередь",
		},
	)
)

// ObserveHTTP учитывает обработанный HTTP запрос
func ObserveHTTP(route, method string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// CommissionCredited учитывает начисленную комиссию
func CommissionCredited(points int64) {
	commissionsCredited.Inc()
	commissionPoints.Add(float64(points))
}

// CommissionSkipped учитывает заказ, по которому комиссия не положена
func CommissionSkipped(reason string) {
	commissionsSkipped.WithLabelValues(reason).Inc()
}

// Withdrawal учитывает смену статуса заявки на вывод
func Withdrawal(status string) {
	withdrawals.WithLabelValues(status).Inc()
}

// CouponApplied учитывает результат применения промокода
func CouponApplied(outcome string) {
	couponApplications.WithLabelValues(outcome).Inc()
}

// SettlementDropped учитывает заказ, отброшенный из-за переполнения очереди
func SettlementDropped() {
	settlementQueueDropped.Inc()
}
