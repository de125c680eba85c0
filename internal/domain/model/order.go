package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a confirmed purchase placed for a customer.
// TotalKg and TotalPrice are derived from the items and never mutated directly.
type Order struct {
	ID         int64
	OrderNo    string
	CustomerID int64
	Customer   *Customer
	Items      []OrderItem
	TotalKg    float64
	TotalPrice float64
	Currency   string
	Notes      *string
	Status     OrderStatus
	CreatedBy  int64
	CreatedAt  time.Time
}

// OrderItem is a single product line owned by its order.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    float64
	PricePerKg  float64
	TotalPrice  float64
}
