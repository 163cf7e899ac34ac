package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Saby007/go-microservices-demo/internal/adapter/userdirectory"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
)

// OrderFacade exposes the subset of application functionality required by the reconciler.
type OrderFacade interface {
	OrdersForReconciliation(ctx context.Context, limit int) ([]model.Order, error)
	VerifyUser(ctx context.Context, userID int64) userdirectory.Outcome
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

// ValidationReconciler re-checks orders flagged PENDING_VALIDATION against the
// user directory and promotes them to PENDING once the user is confirmed.
// Orders whose user stays unconfirmed remain flagged for the next pass.
type ValidationReconciler struct {
	facade       OrderFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewValidationReconciler constructs the reconciler worker pool.
func NewValidationReconciler(facade OrderFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ValidationReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ValidationReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (r *ValidationReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *ValidationReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *ValidationReconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *ValidationReconciler) fetchAndDispatch(ctx context.Context) {
	orders, err := r.facade.OrdersForReconciliation(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch orders for reconciliation failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- order:
		}
	}
}

func (r *ValidationReconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reconcile(ctx, order)
		}
	}
}

func (r *ValidationReconciler) reconcile(ctx context.Context, order model.Order) {
	switch outcome := r.facade.VerifyUser(ctx, order.UserID); outcome {
	case userdirectory.OutcomeFound:
		if err := r.facade.UpdateOrderStatus(ctx, order.ID, model.OrderStatusPending); err != nil {
			r.logger.Error("promote order failed", slog.Int64("order_id", order.ID), slog.String("error", err.Error()))
			return
		}
		r.logger.Info("order validation confirmed", slog.Int64("order_id", order.ID), slog.Int64("user_id", order.UserID))
	case userdirectory.OutcomeNotFound:
		r.logger.Warn("order references missing user", slog.Int64("order_id", order.ID), slog.Int64("user_id", order.UserID))
	default:
		// Directory still down; the order stays flagged until the next pass.
	}
}
