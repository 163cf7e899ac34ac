package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
	"github.com/Saby007/go-microservices-demo/internal/domain/repository"
)

// UserUseCase encapsulates user directory record management.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create stores a new user record. Email is unique across records.
func (u *UserUseCase) Create(ctx context.Context, name, email, department string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domainErrors.ErrEmptyName
	}
	if email == "" {
		return nil, domainErrors.ErrEmptyEmail
	}

	return u.users.Create(ctx, &model.User{
		Name:       name,
		Email:      email,
		Department: strings.TrimSpace(department),
	})
}

// Get returns the user with the given id.
func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// GetByEmail returns the user with the given email.
func (u *UserUseCase) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}

// List returns all user records.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// ListByDepartment returns users belonging to the given department.
func (u *UserUseCase) ListByDepartment(ctx context.Context, department string) ([]model.User, error) {
	return u.users.ListByDepartment(ctx, department)
}

// Search returns users whose name or email contains the query.
func (u *UserUseCase) Search(ctx context.Context, query string) ([]model.User, error) {
	return u.users.Search(ctx, query)
}

// Update replaces name, email and department of the stored user wholesale.
func (u *UserUseCase) Update(ctx context.Context, id int64, name, email, department string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domainErrors.ErrEmptyName
	}
	if email == "" {
		return nil, domainErrors.ErrEmptyEmail
	}

	return u.users.Update(ctx, &model.User{
		ID:         id,
		Name:       name,
		Email:      email,
		Department: strings.TrimSpace(department),
	})
}

// Delete removes the user with the given id.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}
