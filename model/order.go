package model

import (
	"time"

	"github.com/petlove/backend/constant"
)

// OrderItemRequest is a line item as submitted by the client. Prices are
// echoed from the storefront; the total is always recomputed server-side.
type OrderItemRequest struct {
	ProductName string  `json:"product_name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CreateOrderRequest for placing an order
type CreateOrderRequest struct {
	UserID uint64             `json:"user_id" validate:"required"`
	Items  []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status constant.OrderStatus `json:"status" validate:"required,oneof=processing shipped delivered cancelled"`
}

// OrderItem represents one order_item row
type OrderItem struct {
	ID          uint64  `db:"id" json:"-"`
	OrderID     uint64  `db:"order_id" json:"-"`
	ProductName string  `db:"product_name" json:"product_name"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Price       float64 `db:"price" json:"price"`
}

// OrderEntity represents the orders table entity plus its loaded items
type OrderEntity struct {
	ID           uint64               `db:"id" json:"id"`
	UserID       uint64               `db:"user_id" json:"user_id"`
	Status       constant.OrderStatus `db:"status" json:"status"`
	TotalAmount  float64              `db:"total_amount" json:"total_amount"`
	OrderDate    time.Time            `db:"order_date" json:"order_date"`
	DeliveryDate *time.Time           `db:"delivery_date" json:"delivery_date,omitempty"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
	Items        []OrderItem          `db:"-" json:"items"`
}

// OrderFilter for querying orders
type OrderFilter struct {
	UserID uint64
}
