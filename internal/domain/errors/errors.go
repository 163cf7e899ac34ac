package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("price must be non-negative")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrEmptyName       = errors.New("name must not be empty")
	ErrEmptyEmail      = errors.New("email must not be empty")
	ErrEmptyProduct    = errors.New("product name must not be empty")
)
