package repository

import (
	"context"

	"github.com/Saby007/go-microservices-demo/internal/domain/model"
)

// UserRepository describes persistence operations with user records.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByDepartment(ctx context.Context, department string) ([]model.User, error)
	Search(ctx context.Context, query string) ([]model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}
