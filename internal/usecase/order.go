package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders          repository.OrderRepository
	customers       repository.CustomerRepository
	defaultCurrency string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, defaultCurrency string) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, defaultCurrency: defaultCurrency}
}

// Create validates the item list, verifies the customer and persists the
// order with its items atomically. Totals are derived from the items.
func (u *OrderUseCase) Create(ctx context.Context, actor model.UserPayload, input repository.NewOrder) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainErrors.ErrInvalidOrderItems
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 || item.PricePerKg <= 0 {
			return nil, domainErrors.ErrInvalidOrderItems
		}
	}
	if input.Currency == "" {
		input.Currency = u.defaultCurrency
	}

	if _, err := u.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	input.CreatedBy = actor.ID
	return u.orders.Create(ctx, input)
}

// List returns orders visible to the actor, newest first. A BUYER only sees
// orders of the customer record matching their own email.
func (u *OrderUseCase) List(ctx context.Context, actor model.UserPayload, filter repository.OrderFilter) ([]model.Order, model.Pagination, error) {
	filter.Page = filter.Page.Normalize()

	scope, empty, err := buyerScope(ctx, u.customers, actor)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if empty {
		return []model.Order{}, model.NewPagination(filter.Page, 0), nil
	}
	if scope != nil {
		filter.CustomerID = scope
	}

	orders, total, err := u.orders.List(ctx, filter)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return []model.Order{}, model.NewPagination(filter.Page, 0), nil
		}
		return nil, model.Pagination{}, err
	}
	return orders, model.NewPagination(filter.Page, total), nil
}

// Get fetches one order with customer and items populated.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}
