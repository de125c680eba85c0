package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	testhelpers "github.com/nafru/exportdesk/internal/test"
)

type orderFixture struct {
	customers *testhelpers.CustomerRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	uc        *OrderUseCase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	customers := testhelpers.NewCustomerRepositoryStub()
	products := testhelpers.NewProductRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub(customers, products)
	return &orderFixture{
		customers: customers,
		products:  products,
		orders:    orders,
		uc:        NewOrderUseCase(orders, customers, "USD"),
	}
}

func (f *orderFixture) addCustomer(t *testing.T, name, email string) *model.Customer {
	t.Helper()
	customer, err := f.customers.Create(context.Background(), &model.Customer{Name: name, Email: email, Country: "Egypt", Language: "en"})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func (f *orderFixture) addProduct(t *testing.T, name string) *model.Product {
	t.Helper()
	product, err := f.products.Create(context.Background(), &model.Product{Name: name})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

var teamActor = model.UserPayload{ID: 7, Email: "team@example.com", Role: model.RoleTeam}

func TestOrderUseCaseCreateComputesTotals(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Ivan", "ivan@example.com")
	oranges := f.addProduct(t, "Oranges")
	grapes := f.addProduct(t, "Grapes")

	order, err := f.uc.Create(context.Background(), teamActor, repository.NewOrder{
		CustomerID: customer.ID,
		Items: []repository.NewOrderItem{
			{ProductID: oranges.ID, Quantity: 100, PricePerKg: 2},
			{ProductID: grapes.ID, Quantity: 50, PricePerKg: 3.5},
		},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if order.TotalKg != 150 {
		t.Fatalf("expected total 150 kg, got %v", order.TotalKg)
	}
	if order.TotalPrice != 375 {
		t.Fatalf("expected total price 375, got %v", order.TotalPrice)
	}
	if order.Currency != "USD" {
		t.Fatalf("expected default currency, got %q", order.Currency)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if order.CreatedBy != teamActor.ID {
		t.Fatalf("expected creator %d, got %d", teamActor.ID, order.CreatedBy)
	}

	wantNo := fmt.Sprintf("ORD-%d-0001", time.Now().Year())
	if order.OrderNo != wantNo {
		t.Fatalf("expected order number %q, got %q", wantNo, order.OrderNo)
	}
	if len(order.Items) != 2 || order.Items[0].ProductName != "Oranges" {
		t.Fatalf("items not populated: %+v", order.Items)
	}
	if order.Customer == nil || order.Customer.Email != "ivan@example.com" {
		t.Fatalf("customer not attached: %+v", order.Customer)
	}
}

func TestOrderUseCaseCreateSequentialNumbers(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Ivan", "ivan@example.com")
	product := f.addProduct(t, "Oranges")

	ctx := context.Background()
	input := repository.NewOrder{
		CustomerID: customer.ID,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
	}
	first, err := f.uc.Create(ctx, teamActor, input)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := f.uc.Create(ctx, teamActor, input)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	year := time.Now().Year()
	if first.OrderNo != fmt.Sprintf("ORD-%d-0001", year) || second.OrderNo != fmt.Sprintf("ORD-%d-0002", year) {
		t.Fatalf("numbers not sequential: %q, %q", first.OrderNo, second.OrderNo)
	}
}

func TestOrderUseCaseCreateConcurrentNumbersDistinct(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Ivan", "ivan@example.com")
	product := f.addProduct(t, "Oranges")

	const workers = 16
	numbers := make(chan string, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := f.uc.Create(context.Background(), teamActor, repository.NewOrder{
				CustomerID: customer.ID,
				Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
			})
			if err != nil {
				errs <- err
				return
			}
			numbers <- order.OrderNo
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create: %v", err)
	}
	seen := make(map[string]bool, workers)
	for no := range numbers {
		if seen[no] {
			t.Fatalf("duplicate order number %q", no)
		}
		seen[no] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d distinct numbers, got %d", workers, len(seen))
	}
}

func TestOrderUseCaseCreateRejectsBadItems(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Ivan", "ivan@example.com")
	ctx := context.Background()

	cases := []struct {
		name  string
		items []repository.NewOrderItem
	}{
		{"empty", nil},
		{"zero quantity", []repository.NewOrderItem{{ProductID: 1, Quantity: 0, PricePerKg: 2}}},
		{"negative price", []repository.NewOrderItem{{ProductID: 1, Quantity: 10, PricePerKg: -1}}},
		{"missing product", []repository.NewOrderItem{{Quantity: 10, PricePerKg: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create(ctx, teamActor, repository.NewOrder{CustomerID: customer.ID, Items: tc.items})
			if err != domainErrors.ErrInvalidOrderItems {
				t.Fatalf("expected ErrInvalidOrderItems, got %v", err)
			}
		})
	}
	if len(f.orders.Orders) != 0 {
		t.Fatalf("rejected orders left records: %d", len(f.orders.Orders))
	}
}

func TestOrderUseCaseCreateUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)
	product := f.addProduct(t, "Oranges")

	_, err := f.uc.Create(context.Background(), teamActor, repository.NewOrder{
		CustomerID: 99,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
	})
	if err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderUseCaseListBuyerScoping(t *testing.T) {
	f := newOrderFixture(t)
	mine := f.addCustomer(t, "Buyer Co", "buyer@example.com")
	other := f.addCustomer(t, "Other Co", "other@example.com")
	product := f.addProduct(t, "Oranges")

	ctx := context.Background()
	for _, customerID := range []int64{mine.ID, other.ID, mine.ID} {
		if _, err := f.uc.Create(ctx, teamActor, repository.NewOrder{
			CustomerID: customerID,
			Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
		}); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	buyer := model.UserPayload{ID: 2, Email: "buyer@example.com", Role: model.RoleBuyer}
	orders, pagination, err := f.uc.List(ctx, buyer, repository.OrderFilter{})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 2 || pagination.Total != 2 {
		t.Fatalf("expected 2 scoped orders, got %d (total %d)", len(orders), pagination.Total)
	}
	for _, o := range orders {
		if o.CustomerID != mine.ID {
			t.Fatalf("foreign order leaked: %+v", o)
		}
	}

	team, pagination, err := f.uc.List(ctx, teamActor, repository.OrderFilter{})
	if err != nil {
		t.Fatalf("team list returned error: %v", err)
	}
	if len(team) != 3 || pagination.Total != 3 {
		t.Fatalf("expected full visibility for TEAM, got %d", len(team))
	}
}

func TestOrderUseCaseListBuyerWithoutCustomer(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Other Co", "other@example.com")
	product := f.addProduct(t, "Oranges")

	ctx := context.Background()
	if _, err := f.uc.Create(ctx, teamActor, repository.NewOrder{
		CustomerID: customer.ID,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
	}); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	stranger := model.UserPayload{ID: 3, Email: "stranger@example.com", Role: model.RoleBuyer}
	orders, pagination, err := f.uc.List(ctx, stranger, repository.OrderFilter{})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty slice, got %v", orders)
	}
	if pagination.Total != 0 || pagination.Pages != 0 {
		t.Fatalf("unexpected pagination %+v", pagination)
	}
}

func TestOrderUseCaseListStatusFilter(t *testing.T) {
	f := newOrderFixture(t)
	customer := f.addCustomer(t, "Ivan", "ivan@example.com")
	product := f.addProduct(t, "Oranges")

	ctx := context.Background()
	if _, err := f.uc.Create(ctx, teamActor, repository.NewOrder{
		CustomerID: customer.ID,
		Items:      []repository.NewOrderItem{{ProductID: product.ID, Quantity: 1, PricePerKg: 1}},
	}); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	f.orders.Orders[0].Status = model.OrderStatusShipped

	orders, _, err := f.uc.List(ctx, teamActor, repository.OrderFilter{Status: model.OrderStatusPending})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("status filter ignored, got %d orders", len(orders))
	}

	orders, _, err = f.uc.List(ctx, teamActor, repository.OrderFilter{Status: model.OrderStatusShipped})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected one shipped order, got %d", len(orders))
	}
}

func TestOrderUseCaseListRepositoryError(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.Err = fmt.Errorf("db down")
	if _, _, err := f.uc.List(context.Background(), teamActor, repository.OrderFilter{}); err == nil {
		t.Fatal("expected repository error")
	}
}
