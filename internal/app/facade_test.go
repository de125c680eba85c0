package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	testhelpers "github.com/nafru/exportdesk/internal/test"
	"github.com/nafru/exportdesk/internal/usecase"
)

type facadeFixture struct {
	facade    *TradeFacade
	users     *testhelpers.UserRepositoryStub
	customers *testhelpers.CustomerRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	documents *testhelpers.DocumentRepositoryStub
}

func newFacade() facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, "en")

	customers := testhelpers.NewCustomerRepositoryStub()
	customerUC := usecase.NewCustomerUseCase(customers, usecase.CustomerDefaults{Country: "Egypt", Language: "en"})

	products := testhelpers.NewProductRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub(customers, products)
	orderUC := usecase.NewOrderUseCase(orders, customers, "USD")

	shipments := testhelpers.NewShipmentRepositoryStub(orders)
	shipmentUC := usecase.NewShipmentUseCase(shipments, orders, customers)

	documents := testhelpers.NewDocumentRepositoryStub()
	documentUC := usecase.NewDocumentUseCase(documents, orders, testhelpers.RendererStub{})

	productUC := usecase.NewProductUseCase(products)

	facade := NewTradeFacade(authUC, customerUC, orderUC, shipmentUC, documentUC, productUC)
	return facadeFixture{
		facade:    facade,
		users:     users,
		customers: customers,
		orders:    orders,
		products:  products,
		documents: documents,
	}
}

func TestTradeFacadeAuth(t *testing.T) {
	f := newFacade()

	user, err := f.facade.Provision(context.Background(), "admin@example.com", "Admin", "secret", model.RoleAdmin, "en")
	if err != nil {
		t.Fatalf("provision returned error: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Fatalf("unexpected role %q", user.Role)
	}

	stored, err := f.users.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash != "hash:secret" {
		t.Fatalf("unexpected stored hash %q", stored.PasswordHash)
	}

	logged, token, err := f.facade.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if token != "token" || logged.ID != user.ID {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, logged)
	}

	if _, _, err := f.facade.Login(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	payload, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if payload.Role != model.RoleAdmin {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestTradeFacadeCustomersAndOrders(t *testing.T) {
	f := newFacade()
	actor := model.UserPayload{ID: 7, Email: "team@example.com", Role: model.RoleTeam}

	customer, err := f.facade.CreateCustomer(context.Background(), model.Customer{Name: "Haruto", Email: "haruto@example.com"})
	if err != nil {
		t.Fatalf("create customer returned error: %v", err)
	}
	if customer.Country != "Egypt" {
		t.Fatalf("default country not applied: %+v", customer)
	}

	product, err := f.facade.CreateProduct(context.Background(), "Oranges", nil, nil)
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}

	order, err := f.facade.CreateOrder(context.Background(), actor, repository.NewOrder{
		CustomerID: customer.ID,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 100, PricePerKg: 2}},
	})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.TotalKg != 100 || order.TotalPrice != 200 {
		t.Fatalf("unexpected totals: %+v", order)
	}
	if order.CreatedBy != actor.ID {
		t.Fatalf("actor not recorded: %+v", order)
	}

	listed, pagination, err := f.facade.Orders(context.Background(), actor, repository.OrderFilter{})
	if err != nil || len(listed) != 1 || pagination.Total != 1 {
		t.Fatalf("unexpected listing: len=%d pagination=%+v err=%v", len(listed), pagination, err)
	}

	customersListed, _, err := f.facade.Customers(context.Background(), repository.CustomerFilter{Search: "haruto"})
	if err != nil || len(customersListed) != 1 {
		t.Fatalf("unexpected customer listing: len=%d err=%v", len(customersListed), err)
	}
}

func TestTradeFacadeShipmentsAndDocuments(t *testing.T) {
	f := newFacade()
	actor := model.UserPayload{ID: 7, Email: "team@example.com", Role: model.RoleTeam}

	customer, err := f.facade.CreateCustomer(context.Background(), model.Customer{Name: "Haruto", Email: "haruto@example.com"})
	if err != nil {
		t.Fatalf("create customer returned error: %v", err)
	}
	product, err := f.facade.CreateProduct(context.Background(), "Oranges", nil, nil)
	if err != nil {
		t.Fatalf("create product returned error: %v", err)
	}
	order, err := f.facade.CreateOrder(context.Background(), actor, repository.NewOrder{
		CustomerID: customer.ID,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 10, PricePerKg: 1}},
	})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}

	shipment, err := f.facade.CreateShipment(context.Background(), actor, repository.NewShipment{OrderID: order.ID})
	if err != nil {
		t.Fatalf("create shipment returned error: %v", err)
	}
	if shipment.Status != model.ShipmentStatusPending {
		t.Fatalf("unexpected shipment status: %q", shipment.Status)
	}

	shipments, _, err := f.facade.Shipments(context.Background(), actor, repository.ShipmentFilter{})
	if err != nil || len(shipments) != 1 {
		t.Fatalf("unexpected shipment listing: len=%d err=%v", len(shipments), err)
	}

	doc, artifact, err := f.facade.GenerateDocument(context.Background(), actor, order.ID, string(model.DocumentCommercialInvoice))
	if err != nil {
		t.Fatalf("generate document returned error: %v", err)
	}
	if doc.Type != model.DocumentCommercialInvoice || len(artifact) == 0 {
		t.Fatalf("unexpected document result: %+v artifact=%d bytes", doc, len(artifact))
	}

	docs, _, err := f.facade.Documents(context.Background(), repository.DocumentFilter{OrderID: &order.ID})
	if err != nil || len(docs) != 1 {
		t.Fatalf("unexpected document listing: len=%d err=%v", len(docs), err)
	}

	products, _, err := f.facade.Products(context.Background(), model.PageRequest{})
	if err != nil || len(products) != 1 {
		t.Fatalf("unexpected product listing: len=%d err=%v", len(products), err)
	}
}
