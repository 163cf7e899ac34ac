package app

import (
	"context"

	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

// UserFacade aggregates user record operations used by the HTTP layer.
type UserFacade struct {
	users *usecase.UserUseCase
}

// NewUserFacade constructs UserFacade.
func NewUserFacade(users *usecase.UserUseCase) *UserFacade {
	return &UserFacade{users: users}
}

func (f *UserFacade) CreateUser(ctx context.Context, name, email, department string) (*model.User, error) {
	return f.users.Create(ctx, name, email, department)
}

func (f *UserFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Get(ctx, id)
}

func (f *UserFacade) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users.GetByEmail(ctx, email)
}

func (f *UserFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *UserFacade) UsersByDepartment(ctx context.Context, department string) ([]model.User, error) {
	return f.users.ListByDepartment(ctx, department)
}

func (f *UserFacade) SearchUsers(ctx context.Context, query string) ([]model.User, error) {
	return f.users.Search(ctx, query)
}

func (f *UserFacade) UpdateUser(ctx context.Context, id int64, name, email, department string) (*model.User, error) {
	return f.users.Update(ctx, id, name, email, department)
}

func (f *UserFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}
