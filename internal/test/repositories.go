package test

import (
	"context"
	"sort"
	"strings"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64
	Err    error

	CreateCalls int
	UpdateCalls int
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders: make(map[int64]*model.Order),
		Next:   1,
	}
}

// Create stores the order and assigns it the next identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.CreateCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Orders[stored.ID] = &stored
	return &stored, nil
}

// GetByID fetches order by id or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders ordered by id.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(model.Order) bool { return true }), nil
}

// ListByUser returns orders referencing the given user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(o model.Order) bool { return o.UserID == userID }), nil
}

// ListByStatus returns orders in the given status.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(o model.Order) bool { return o.Status == status }), nil
}

// ListRecent returns orders not awaiting validation.
func (s *OrderRepositoryStub) ListRecent(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(o model.Order) bool { return o.Status != model.OrderStatusPendingValidation }), nil
}

// Update replaces the stored order or returns not found.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.UpdateCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.Orders[order.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	stored := *order
	stored.CreatedAt = existing.CreatedAt
	s.Orders[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

// Delete removes the stored order or returns not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// Count returns the number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.Orders)), nil
}

// SelectBatchForReconciliation returns up to limit orders awaiting validation.
func (s *OrderRepositoryStub) SelectBatchForReconciliation(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	orders := s.collect(func(o model.Order) bool { return o.Status == model.OrderStatusPendingValidation })
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// UpdateStatus sets the status of a stored order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.Status = status
	return nil
}

func (s *OrderRepositoryStub) collect(keep func(model.Order) bool) []model.Order {
	var result []model.Order
	for _, order := range s.Orders {
		if keep(*order) {
			result = append(result, *order)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// UserRepositoryStub stores user records in-memory for tests.
type UserRepositoryStub struct {
	Users   map[int64]*model.User
	ByEmail map[string]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users:   make(map[int64]*model.User),
		ByEmail: make(map[string]*model.User),
		Next:    1,
	}
}

// Create registers a user unless the email already exists.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	s.Next++
	s.Users[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	return &stored, nil
}

// GetByID fetches user by id or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collectUsers(func(model.User) bool { return true }), nil
}

// ListByDepartment returns users from the given department.
func (s *UserRepositoryStub) ListByDepartment(ctx context.Context, department string) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collectUsers(func(u model.User) bool { return u.Department == department }), nil
}

// Search returns users whose name or email contains the query.
func (s *UserRepositoryStub) Search(ctx context.Context, query string) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collectUsers(func(u model.User) bool {
		return containsFold(u.Name, query) || containsFold(u.Email, query)
	}), nil
}

// Update replaces the stored user or returns not found.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	existing, ok := s.Users[user.ID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	delete(s.ByEmail, existing.Email)
	stored := *user
	stored.CreatedAt = existing.CreatedAt
	s.Users[stored.ID] = &stored
	s.ByEmail[stored.Email] = &stored
	copied := stored
	return &copied, nil
}

// Delete removes the stored user or returns not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	delete(s.Users, id)
	return nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *UserRepositoryStub) collectUsers(keep func(model.User) bool) []model.User {
	var result []model.User
	for _, user := range s.Users {
		if keep(*user) {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
