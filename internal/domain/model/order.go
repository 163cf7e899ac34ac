package model

import "time"

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	// OrderStatusPending means the referenced user was confirmed at admission time.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPendingValidation means user existence could not be confirmed
	// at admission time; the order awaits reconciliation.
	OrderStatusPendingValidation OrderStatus = "PENDING_VALIDATION"
	OrderStatusProcessing        OrderStatus = "PROCESSING"
	OrderStatusCompleted         OrderStatus = "COMPLETED"
)

// Valid reports whether the status belongs to the closed status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPendingValidation, OrderStatusProcessing, OrderStatusCompleted:
		return true
	}
	return false
}

// Order describes a purchase order referencing a user from the user directory.
type Order struct {
	ID          int64
	UserID      int64
	ProductName string
	Quantity    int
	Price       float64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
