// Package worker досчитывает реферальные комиссии по завершенным заказам,
// которые не удалось обработать в момент смены статуса.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/shopvely/internal/domain"
	"github.com/avc/shopvely/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров для начисления комиссий
type Pool struct {
	workers      int
	queue        chan uuid.UUID
	orderRepo    domain.OrderRepository
	commission   domain.CommissionService
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	scanBatch    int
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	scanBatch int,
	orderRepo domain.OrderRepository,
	commission domain.CommissionService,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan uuid.UUID, queueSize),
		orderRepo:    orderRepo,
		commission:   commission,
		logger:       logger,
		scanInterval: scanInterval,
		scanBatch:    scanBatch,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Wait дожидается остановки воркеров после отмены контекста
func (p *Pool) Wait() {
	p.wg.Wait()
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case orderID := <-p.queue:
			p.settleOrder(ctx, orderID)
		}
	}
}

// scanner периодически ищет завершенные заказы без начисленной комиссии
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanUnsettledOrders(ctx)
		}
	}
}

// scanUnsettledOrders отправляет найденные заказы в очередь
func (p *Pool) scanUnsettledOrders(ctx context.Context) {
	ids, err := p.orderRepo.GetUnsettledOrderIDs(ctx, p.scanBatch)
	if err != nil {
		p.logger.Error("failed to get unsettled orders", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.queue <- id:
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, заказ попадет в следующий проход
			metrics.SettlementDropped()
			p.logger.Warn("queue is full, skipping order", zap.String("order_id", id.String()))
		}
	}
}

// settleOrder начисляет комиссию по одному заказу.
// Повторное начисление отсекается уникальным ключом журнала, поэтому дубль в очереди безопасен.
func (p *Pool) settleOrder(ctx context.Context, orderID uuid.UUID) {
	p.logger.Debug("settling order", zap.String("order_id", orderID.String()))

	order, err := p.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		p.logger.Error("failed to get order",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return
	}

	result, err := p.commission.Settle(ctx, order)
	if err != nil {
		p.logger.Error("failed to settle commission",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("order settled",
		zap.String("order_id", orderID.String()),
		zap.Bool("credited", result.Credited),
		zap.Int64("points", result.Points),
		zap.String("skip_reason", result.SkipReason),
	)
}
