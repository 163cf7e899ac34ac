package test

import (
	"context"

	"github.com/Saby007/go-microservices-demo/internal/adapter/userdirectory"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn   func(context.Context, usecase.OrderCandidate) (*model.Order, error)
	OrderFn    func(context.Context, int64) (*model.Order, error)
	OrdersFn   func(context.Context) ([]model.Order, error)
	ByUserFn   func(context.Context, int64) ([]model.Order, error)
	ByStatusFn func(context.Context, string) ([]model.Order, error)
	RecentFn   func(context.Context) ([]model.Order, error)
	CountFn    func(context.Context) (int64, error)
	UpdateFn   func(context.Context, int64, usecase.OrderCandidate, string) (*model.Order, error)
	DeleteFn   func(context.Context, int64) error
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, candidate)
	}
	return &model.Order{ID: 1, UserID: candidate.UserID, ProductName: candidate.ProductName, Quantity: candidate.Quantity, Price: candidate.Price, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ByUserFn != nil {
		return s.ByUserFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

func (s OrderFacadeStub) OrdersByStatus(ctx context.Context, status string) ([]model.Order, error) {
	if s.ByStatusFn != nil {
		return s.ByStatusFn(ctx, status)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatus(status)}}, nil
}

func (s OrderFacadeStub) RecentOrders(ctx context.Context) ([]model.Order, error) {
	if s.RecentFn != nil {
		return s.RecentFn(ctx)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusProcessing}}, nil
}

func (s OrderFacadeStub) OrderCount(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	return 1, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id int64, candidate usecase.OrderCandidate, status string) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, candidate, status)
	}
	return &model.Order{ID: id, UserID: candidate.UserID, ProductName: candidate.ProductName, Quantity: candidate.Quantity, Price: candidate.Price, Status: model.OrderStatus(status)}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// UserFacadeStub provides controllable behaviour for user endpoints.
type UserFacadeStub struct {
	CreateFn       func(context.Context, string, string, string) (*model.User, error)
	UserFn         func(context.Context, int64) (*model.User, error)
	ByEmailFn      func(context.Context, string) (*model.User, error)
	UsersFn        func(context.Context) ([]model.User, error)
	ByDepartmentFn func(context.Context, string) ([]model.User, error)
	SearchFn       func(context.Context, string) ([]model.User, error)
	UpdateFn       func(context.Context, int64, string, string, string) (*model.User, error)
	DeleteFn       func(context.Context, int64) error
}

func (s UserFacadeStub) CreateUser(ctx context.Context, name, email, department string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, department)
	}
	return &model.User{ID: 1, Name: name, Email: email, Department: department}, nil
}

func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Name: "John Doe", Email: "john.doe@company.com"}, nil
}

func (s UserFacadeStub) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.ByEmailFn != nil {
		return s.ByEmailFn(ctx, email)
	}
	return &model.User{ID: 1, Email: email}, nil
}

func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Name: "John Doe"}}, nil
}

func (s UserFacadeStub) UsersByDepartment(ctx context.Context, department string) ([]model.User, error) {
	if s.ByDepartmentFn != nil {
		return s.ByDepartmentFn(ctx, department)
	}
	return []model.User{{ID: 1, Department: department}}, nil
}

func (s UserFacadeStub) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query)
	}
	return []model.User{{ID: 1, Name: "John Doe"}}, nil
}

func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, name, email, department string) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, email, department)
	}
	return &model.User{ID: id, Name: name, Email: email, Department: department}, nil
}

func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// VerifierStub returns a fixed verification outcome and records calls.
type VerifierStub struct {
	Outcome userdirectory.Outcome
	Calls   int
}

func (s *VerifierStub) Verify(ctx context.Context, userID int64) userdirectory.Outcome {
	s.Calls++
	return s.Outcome
}
