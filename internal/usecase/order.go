package usecase

import (
	"context"
	"strings"

	"github.com/Saby007/go-microservices-demo/internal/adapter/userdirectory"
	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/domain/repository"
)

// OrderCandidate carries caller-supplied fields of an order to admit. The
// status is never part of the candidate: admission assigns it by policy.
type OrderCandidate struct {
	UserID      int64
	ProductName string
	Quantity    int
	Price       float64
}

// OrderUseCase encapsulates order lifecycle logic, including the admission
// flow that checks the referenced user against the user directory.
type OrderUseCase struct {
	orders   repository.OrderRepository
	verifier userdirectory.Verifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, verifier userdirectory.Verifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, verifier: verifier}
}

// Admit validates the candidate, checks the referenced user against the user
// directory and persists the order with a policy-assigned status. The order
// is persisted regardless of directory health: an unconfirmed user degrades
// the order into PENDING_VALIDATION instead of failing the request.
func (u *OrderUseCase) Admit(ctx context.Context, candidate OrderCandidate) (*model.Order, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}

	outcome := u.verifier.Verify(ctx, candidate.UserID)
	if err := ctx.Err(); err != nil {
		// Caller gave up while the lookup was outstanding; persist nothing.
		return nil, err
	}

	order := &model.Order{
		UserID:      candidate.UserID,
		ProductName: candidate.ProductName,
		Quantity:    candidate.Quantity,
		Price:       candidate.Price,
		Status:      statusForOutcome(outcome),
	}

	return u.orders.Create(ctx, order)
}

// statusForOutcome is the admission status policy, total over Outcome.
func statusForOutcome(outcome userdirectory.Outcome) model.OrderStatus {
	if outcome == userdirectory.OutcomeFound {
		return model.OrderStatusPending
	}
	return model.OrderStatusPendingValidation
}

func validateCandidate(candidate OrderCandidate) error {
	if strings.TrimSpace(candidate.ProductName) == "" {
		return domainErrors.ErrEmptyProduct
	}
	if candidate.Quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	if candidate.Price < 0 {
		return domainErrors.ErrInvalidPrice
	}
	return nil
}

// Get returns the order with the given id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns all orders sorted by creation time.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// ListByUser returns orders referencing the given user.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListByStatus returns orders currently in the given status.
func (u *OrderUseCase) ListByStatus(ctx context.Context, status string) ([]model.Order, error) {
	parsed := model.OrderStatus(status)
	if !parsed.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}
	return u.orders.ListByStatus(ctx, parsed)
}

// ListRecent returns orders that are not awaiting user validation.
func (u *OrderUseCase) ListRecent(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListRecent(ctx)
}

// Count returns the total number of stored orders.
func (u *OrderUseCase) Count(ctx context.Context) (int64, error) {
	return u.orders.Count(ctx)
}

// Reassign replaces product name, quantity, price and status of the stored
// order wholesale. Any status may follow any other; the value only has to be
// a member of the status set. The user reference is not re-verified.
func (u *OrderUseCase) Reassign(ctx context.Context, id int64, candidate OrderCandidate, status string) (*model.Order, error) {
	if err := validateCandidate(candidate); err != nil {
		return nil, err
	}
	parsed := model.OrderStatus(status)
	if !parsed.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}

	order := &model.Order{
		ID:          id,
		UserID:      candidate.UserID,
		ProductName: candidate.ProductName,
		Quantity:    candidate.Quantity,
		Price:       candidate.Price,
		Status:      parsed,
	}

	return u.orders.Update(ctx, order)
}

// Delete removes the order with the given id.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}

// SelectBatchForReconciliation returns orders awaiting user validation.
func (u *OrderUseCase) SelectBatchForReconciliation(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchForReconciliation(ctx, limit)
}

// VerifyUser re-checks a user reference against the directory.
func (u *OrderUseCase) VerifyUser(ctx context.Context, userID int64) userdirectory.Outcome {
	return u.verifier.Verify(ctx, userID)
}

// UpdateStatus persists the status for an order.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, orderID, status)
}
