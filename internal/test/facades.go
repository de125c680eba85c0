package test

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// AuthFacadeStub implements handler auth dependencies via overrides.
type AuthFacadeStub struct {
	LoginFn      func(ctx context.Context, email, password string) (*model.User, string, error)
	ParseTokenFn func(token string) (*model.UserPayload, error)
}

func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	user := &model.User{ID: 1, Email: email, Name: "Stub User", Role: model.RoleTeam, Language: "en"}
	return user, "session-token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (*model.UserPayload, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return &model.UserPayload{ID: 1, Email: "stub@example.com", Role: model.RoleTeam}, nil
}

// CustomerFacadeStub implements customer handler dependencies via overrides.
type CustomerFacadeStub struct {
	CreateCustomerFn func(ctx context.Context, input model.Customer) (*model.Customer, error)
	CustomersFn      func(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, model.Pagination, error)
}

func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, input model.Customer) (*model.Customer, error) {
	if s.CreateCustomerFn != nil {
		return s.CreateCustomerFn(ctx, input)
	}
	input.ID = 1
	return &input, nil
}

func (s CustomerFacadeStub) Customers(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, model.Pagination, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, filter)
	}
	return []model.Customer{}, model.NewPagination(filter.Page.Normalize(), 0), nil
}

// OrderFacadeStub implements order handler dependencies via overrides.
type OrderFacadeStub struct {
	CreateOrderFn func(ctx context.Context, actor model.UserPayload, input repository.NewOrder) (*model.Order, error)
	OrdersFn      func(ctx context.Context, actor model.UserPayload, filter repository.OrderFilter) ([]model.Order, model.Pagination, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, actor model.UserPayload, input repository.NewOrder) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, actor, input)
	}
	totalKg, totalPrice := input.Totals()
	return &model.Order{
		ID:         1,
		OrderNo:    "ORD-2026-0001",
		CustomerID: input.CustomerID,
		Customer:   &model.Customer{ID: input.CustomerID, Name: "Customer", Email: "customer@example.com"},
		TotalKg:    totalKg,
		TotalPrice: totalPrice,
		Currency:   input.Currency,
		Status:     model.OrderStatusPending,
		CreatedBy:  actor.ID,
	}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, actor model.UserPayload, filter repository.OrderFilter) ([]model.Order, model.Pagination, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor, filter)
	}
	return []model.Order{}, model.NewPagination(filter.Page.Normalize(), 0), nil
}

// ShipmentFacadeStub implements shipment handler dependencies via overrides.
type ShipmentFacadeStub struct {
	CreateShipmentFn func(ctx context.Context, actor model.UserPayload, input repository.NewShipment) (*model.Shipment, error)
	ShipmentsFn      func(ctx context.Context, actor model.UserPayload, filter repository.ShipmentFilter) ([]model.Shipment, model.Pagination, error)
}

func (s ShipmentFacadeStub) CreateShipment(ctx context.Context, actor model.UserPayload, input repository.NewShipment) (*model.Shipment, error) {
	if s.CreateShipmentFn != nil {
		return s.CreateShipmentFn(ctx, actor, input)
	}
	return &model.Shipment{
		ID:        1,
		OrderID:   input.OrderID,
		ETD:       input.ETD,
		ETA:       input.ETA,
		Status:    model.ShipmentStatusPending,
		CreatedBy: actor.ID,
	}, nil
}

func (s ShipmentFacadeStub) Shipments(ctx context.Context, actor model.UserPayload, filter repository.ShipmentFilter) ([]model.Shipment, model.Pagination, error) {
	if s.ShipmentsFn != nil {
		return s.ShipmentsFn(ctx, actor, filter)
	}
	return []model.Shipment{}, model.NewPagination(filter.Page.Normalize(), 0), nil
}

// DocumentFacadeStub implements document handler dependencies via overrides.
type DocumentFacadeStub struct {
	GenerateDocumentFn func(ctx context.Context, actor model.UserPayload, orderID int64, docType string) (*model.Document, []byte, error)
	DocumentsFn        func(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, model.Pagination, error)
}

func (s DocumentFacadeStub) GenerateDocument(ctx context.Context, actor model.UserPayload, orderID int64, docType string) (*model.Document, []byte, error) {
	if s.GenerateDocumentFn != nil {
		return s.GenerateDocumentFn(ctx, actor, orderID, docType)
	}
	return &model.Document{
		ID:        1,
		OrderID:   orderID,
		Type:      model.DocumentType(docType),
		FileName:  docType + "_ORD-2026-0001_1.pdf",
		Status:    model.DocumentStatusGenerated,
		CreatedBy: actor.ID,
	}, []byte("%PDF-stub"), nil
}

func (s DocumentFacadeStub) Documents(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, model.Pagination, error) {
	if s.DocumentsFn != nil {
		return s.DocumentsFn(ctx, filter)
	}
	return []model.Document{}, model.NewPagination(filter.Page.Normalize(), 0), nil
}

// ProductFacadeStub implements product handler dependencies via overrides.
type ProductFacadeStub struct {
	CreateProductFn func(ctx context.Context, name string, category, origin *string) (*model.Product, error)
	ProductsFn      func(ctx context.Context, page model.PageRequest) ([]model.Product, model.Pagination, error)
}

func (s ProductFacadeStub) CreateProduct(ctx context.Context, name string, category, origin *string) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, name, category, origin)
	}
	return &model.Product{ID: 1, Name: name, Category: category, Origin: origin}, nil
}

func (s ProductFacadeStub) Products(ctx context.Context, page model.PageRequest) ([]model.Product, model.Pagination, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, page)
	}
	return []model.Product{}, model.NewPagination(page.Normalize(), 0), nil
}

// ExportFacadeStub aggregates all facade stubs for router level tests.
type ExportFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
	OrderFacadeStub
	ShipmentFacadeStub
	DocumentFacadeStub
	ProductFacadeStub
}
