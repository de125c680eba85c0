package handlers

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*model.UserPayload, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	CreateCustomer(ctx context.Context, input model.Customer) (*model.Customer, error)
	Customers(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, model.Pagination, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actor model.UserPayload, input repository.NewOrder) (*model.Order, error)
	Orders(ctx context.Context, actor model.UserPayload, filter repository.OrderFilter) ([]model.Order, model.Pagination, error)
}

// ShipmentFacade encapsulates shipment operations exposed via HTTP.
type ShipmentFacade interface {
	CreateShipment(ctx context.Context, actor model.UserPayload, input repository.NewShipment) (*model.Shipment, error)
	Shipments(ctx context.Context, actor model.UserPayload, filter repository.ShipmentFilter) ([]model.Shipment, model.Pagination, error)
}

// DocumentFacade encapsulates document generation and listing.
type DocumentFacade interface {
	GenerateDocument(ctx context.Context, actor model.UserPayload, orderID int64, docType string) (*model.Document, []byte, error)
	Documents(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, model.Pagination, error)
}

// ProductFacade encapsulates product catalog operations.
type ProductFacade interface {
	CreateProduct(ctx context.Context, name string, category, origin *string) (*model.Product, error)
	Products(ctx context.Context, page model.PageRequest) ([]model.Product, model.Pagination, error)
}

// ExportFacade aggregates the full set of operations used across handlers.
type ExportFacade interface {
	AuthFacade
	CustomerFacade
	OrderFacade
	ShipmentFacade
	DocumentFacade
	ProductFacade
}
