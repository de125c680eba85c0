package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
	testhelpers "github.com/nafru/exportdesk/internal/test"
)

func newCustomerUC(repo *testhelpers.CustomerRepositoryStub) *CustomerUseCase {
	return NewCustomerUseCase(repo, CustomerDefaults{Country: "Egypt", Language: "en"})
}

func TestCustomerUseCaseCreateAppliesDefaults(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	uc := newCustomerUC(repo)

	customer, err := uc.Create(context.Background(), model.Customer{Name: "Ivan", Email: "ivan@example.com"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if customer.Country != "Egypt" {
		t.Fatalf("expected default country, got %q", customer.Country)
	}
	if customer.Language != "en" {
		t.Fatalf("expected default language, got %q", customer.Language)
	}
}

func TestCustomerUseCaseCreateKeepsExplicitValues(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	uc := newCustomerUC(repo)

	customer, err := uc.Create(context.Background(), model.Customer{
		Name:     "Olga",
		Email:    "olga@example.com",
		Country:  "Russia",
		Language: "ru",
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if customer.Country != "Russia" || customer.Language != "ru" {
		t.Fatalf("explicit values overwritten: %q %q", customer.Country, customer.Language)
	}
}

func TestCustomerUseCaseCreateDuplicateEmail(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	uc := newCustomerUC(repo)

	ctx := context.Background()
	if _, err := uc.Create(ctx, model.Customer{Name: "First", Email: "dup@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(ctx, model.Customer{Name: "Second", Email: "dup@example.com"}); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(repo.Customers) != 1 {
		t.Fatalf("duplicate attempt left a record, have %d", len(repo.Customers))
	}
}

func TestCustomerUseCaseCreateValidation(t *testing.T) {
	uc := newCustomerUC(testhelpers.NewCustomerRepositoryStub())
	ctx := context.Background()

	if _, err := uc.Create(ctx, model.Customer{Name: "  ", Email: "a@b.c"}); err != domainErrors.ErrValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := uc.Create(ctx, model.Customer{Name: "A", Email: ""}); err != domainErrors.ErrValidation {
		t.Fatalf("expected validation error for empty email, got %v", err)
	}
}

func TestCustomerUseCaseListSearchAndPagination(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	uc := newCustomerUC(repo)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := uc.Create(ctx, model.Customer{
			Name:  fmt.Sprintf("Customer %02d", i),
			Email: fmt.Sprintf("customer%02d@example.com", i),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	customers, pagination, err := uc.List(ctx, repository.CustomerFilter{})
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(customers) != model.DefaultLimit {
		t.Fatalf("expected default page size, got %d", len(customers))
	}
	if pagination.Total != 15 || pagination.Pages != 2 || pagination.Page != 1 {
		t.Fatalf("unexpected pagination %+v", pagination)
	}

	customers, pagination, err = uc.List(ctx, repository.CustomerFilter{Page: model.PageRequest{Page: 2}})
	if err != nil {
		t.Fatalf("list page 2 returned error: %v", err)
	}
	if len(customers) != 5 || pagination.Page != 2 {
		t.Fatalf("unexpected second page: %d records, %+v", len(customers), pagination)
	}

	customers, pagination, err = uc.List(ctx, repository.CustomerFilter{Search: "customer07"})
	if err != nil {
		t.Fatalf("search returned error: %v", err)
	}
	if len(customers) != 1 || pagination.Total != 1 {
		t.Fatalf("expected single match, got %d (total %d)", len(customers), pagination.Total)
	}
}

func TestCustomerUseCaseListRepositoryError(t *testing.T) {
	repo := testhelpers.NewCustomerRepositoryStub()
	repo.Err = fmt.Errorf("db down")
	uc := newCustomerUC(repo)
	if _, _, err := uc.List(context.Background(), repository.CustomerFilter{}); err == nil {
		t.Fatal("expected repository error")
	}
}
