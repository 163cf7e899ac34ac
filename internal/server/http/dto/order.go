package dto

import "time"

// OrderRequest carries caller-supplied order fields. Status is ignored on
// create (admission assigns it) and required on update.
type OrderRequest struct {
	UserID      int64   `json:"userId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Status      string  `json:"status,omitempty"`
}

// OrderResponse represents a persisted order.
type OrderResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
