package app

import (
	"context"

	"github.com/Saby007/go-microservices-demo/internal/adapter/userdirectory"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

// OrderFacade aggregates order operations used by the HTTP layer and the
// validation reconciler.
type OrderFacade struct {
	orders *usecase.OrderUseCase
}

// NewOrderFacade constructs OrderFacade.
func NewOrderFacade(orders *usecase.OrderUseCase) *OrderFacade {
	return &OrderFacade{orders: orders}
}

func (f *OrderFacade) CreateOrder(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
	return f.orders.Admit(ctx, candidate)
}

func (f *OrderFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *OrderFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *OrderFacade) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *OrderFacade) OrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return f.orders.ListByStatus(ctx, status)
}

func (f *OrderFacade) RecentOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListRecent(ctx)
}

func (f *OrderFacade) OrderCount(ctx context.Context) (int64, error) {
	return f.orders.Count(ctx)
}

func (f *OrderFacade) UpdateOrder(ctx context.Context, id int64, candidate usecase.OrderCandidate, status string) (*model.Order, error) {
	return f.orders.Reassign(ctx, id, candidate, status)
}

func (f *OrderFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *OrderFacade) OrdersForReconciliation(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForReconciliation(ctx, limit)
}

func (f *OrderFacade) VerifyUser(ctx context.Context, userID int64) userdirectory.Outcome {
	return f.orders.VerifyUser(ctx, userID)
}

func (f *OrderFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}
