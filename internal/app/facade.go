package app

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	"github.com/nafru/exportdesk/internal/usecase"
)

// TradeFacade aggregates the business use cases behind one surface consumed
// by the HTTP layer.
type TradeFacade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
	shipments *usecase.ShipmentUseCase
	documents *usecase.DocumentUseCase
	products  *usecase.ProductUseCase
}

func NewTradeFacade(
	auth *usecase.AuthUseCase,
	customers *usecase.CustomerUseCase,
	orders *usecase.OrderUseCase,
	shipments *usecase.ShipmentUseCase,
	documents *usecase.DocumentUseCase,
	products *usecase.ProductUseCase,
) *TradeFacade {
	return &TradeFacade{
		auth:      auth,
		customers: customers,
		orders:    orders,
		shipments: shipments,
		documents: documents,
		products:  products,
	}
}

func (f *TradeFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *TradeFacade) ParseToken(token string) (*model.UserPayload, error) {
	return f.auth.ParseToken(token)
}

func (f *TradeFacade) Provision(ctx context.Context, email, name, password string, role model.Role, language string) (*model.User, error) {
	return f.auth.Provision(ctx, email, name, password, role, language)
}

func (f *TradeFacade) CreateCustomer(ctx context.Context, input model.Customer) (*model.Customer, error) {
	return f.customers.Create(ctx, input)
}

func (f *TradeFacade) Customers(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, model.Pagination, error) {
	return f.customers.List(ctx, filter)
}

func (f *TradeFacade) CreateOrder(ctx context.Context, actor model.UserPayload, input repository.NewOrder) (*model.Order, error) {
	return f.orders.Create(ctx, actor, input)
}

func (f *TradeFacade) Orders(ctx context.Context, actor model.UserPayload, filter repository.OrderFilter) ([]model.Order, model.Pagination, error) {
	return f.orders.List(ctx, actor, filter)
}

func (f *TradeFacade) CreateShipment(ctx context.Context, actor model.UserPayload, input repository.NewShipment) (*model.Shipment, error) {
	return f.shipments.Create(ctx, actor, input)
}

func (f *TradeFacade) Shipments(ctx context.Context, actor model.UserPayload, filter repository.ShipmentFilter) ([]model.Shipment, model.Pagination, error) {
	return f.shipments.List(ctx, actor, filter)
}

func (f *TradeFacade) GenerateDocument(ctx context.Context, actor model.UserPayload, orderID int64, docType string) (*model.Document, []byte, error) {
	return f.documents.Generate(ctx, actor, orderID, docType)
}

func (f *TradeFacade) Documents(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, model.Pagination, error) {
	return f.documents.List(ctx, filter)
}

func (f *TradeFacade) CreateProduct(ctx context.Context, name string, category, origin *string) (*model.Product, error) {
	return f.products.Create(ctx, name, category, origin)
}

func (f *TradeFacade) Products(ctx context.Context, page model.PageRequest) ([]model.Product, model.Pagination, error) {
	return f.products.List(ctx, page)
}
