package usecase

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// ShipmentUseCase encapsulates logistics records attached to orders.
type ShipmentUseCase struct {
	shipments repository.ShipmentRepository
	orders    repository.OrderRepository
	customers repository.CustomerRepository
}

// NewShipmentUseCase constructs ShipmentUseCase.
func NewShipmentUseCase(shipments repository.ShipmentRepository, orders repository.OrderRepository, customers repository.CustomerRepository) *ShipmentUseCase {
	return &ShipmentUseCase{shipments: shipments, orders: orders, customers: customers}
}

// Create attaches a shipment to an existing order. ErrNotFound when the
// order does not exist.
func (u *ShipmentUseCase) Create(ctx context.Context, actor model.UserPayload, input repository.NewShipment) (*model.Shipment, error) {
	if _, err := u.orders.GetByID(ctx, input.OrderID); err != nil {
		return nil, err
	}
	input.CreatedBy = actor.ID
	return u.shipments.Create(ctx, input)
}

// List returns shipments visible to the actor, newest first. BUYER scoping
// follows the shipment's parent order's customer.
func (u *ShipmentUseCase) List(ctx context.Context, actor model.UserPayload, filter repository.ShipmentFilter) ([]model.Shipment, model.Pagination, error) {
	filter.Page = filter.Page.Normalize()

	scope, empty, err := buyerScope(ctx, u.customers, actor)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	if empty {
		return []model.Shipment{}, model.NewPagination(filter.Page, 0), nil
	}
	if scope != nil {
		filter.CustomerID = scope
	}

	shipments, total, err := u.shipments.List(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return shipments, model.NewPagination(filter.Page, total), nil
}
