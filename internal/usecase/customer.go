package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// CustomerDefaults hold configuration-resolved fallbacks for new customers.
type CustomerDefaults struct {
	Country  string
	Language string
}

// CustomerUseCase encapsulates customer lifecycle logic.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	defaults  CustomerDefaults
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository, defaults CustomerDefaults) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, defaults: defaults}
}

// Create registers a customer. Email is unique; duplicates fail with
// ErrAlreadyExists and leave no record behind.
func (u *CustomerUseCase) Create(ctx context.Context, input model.Customer) (*model.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" {
		return nil, domainErrors.ErrValidation
	}
	if input.Country == "" {
		input.Country = u.defaults.Country
	}
	if input.Language == "" {
		input.Language = u.defaults.Language
	}

	input.ID = 0
	return u.customers.Create(ctx, &input)
}

// List returns customers matching the free-text search with pagination.
func (u *CustomerUseCase) List(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, model.Pagination, error) {
	filter.Page = filter.Page.Normalize()
	customers, total, err := u.customers.List(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return customers, model.NewPagination(filter.Page, total), nil
}
