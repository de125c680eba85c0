package repository

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// OrderFilter narrows order listings. CustomerID restricts the result to one
// customer's orders and is set by buyer scoping.
type OrderFilter struct {
	Status     model.OrderStatus
	CustomerID *int64
	Page       model.PageRequest
}

// NewOrderItem is the input for a single order line.
type NewOrderItem struct {
	ProductID  int64
	Quantity   float64
	PricePerKg float64
}

// NewOrder is the input for atomic order creation. The repository allocates
// the order number and persists the order together with its items.
type NewOrder struct {
	CustomerID int64
	Items      []NewOrderItem
	Currency   string
	Notes      *string
	CreatedBy  int64
}

// Totals derives the order aggregates from its items.
func (o NewOrder) Totals() (totalKg, totalPrice float64) {
	for _, item := range o.Items {
		totalKg += item.Quantity
		totalPrice += item.Quantity * item.PricePerKg
	}
	return totalKg, totalPrice
}

// OrderRepository describes persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int, error)
}
