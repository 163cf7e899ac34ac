package handlers

import (
	"context"

	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, candidate usecase.OrderCandidate) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
	OrdersByStatus(ctx context.Context, status string) ([]model.Order, error)
	RecentOrders(ctx context.Context) ([]model.Order, error)
	OrderCount(ctx context.Context) (int64, error)
	UpdateOrder(ctx context.Context, id int64, candidate usecase.OrderCandidate, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// UserFacade encapsulates user record operations exposed via HTTP.
type UserFacade interface {
	CreateUser(ctx context.Context, name, email, department string) (*model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UsersByDepartment(ctx context.Context, department string) ([]model.User, error)
	SearchUsers(ctx context.Context, query string) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, name, email, department string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
