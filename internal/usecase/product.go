package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// ProductUseCase encapsulates the product catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create registers a catalog entry.
func (u *ProductUseCase) Create(ctx context.Context, name string, category, origin *string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.products.Create(ctx, &model.Product{Name: name, Category: category, Origin: origin})
}

// List returns catalog entries with pagination.
func (u *ProductUseCase) List(ctx context.Context, page model.PageRequest) ([]model.Product, model.Pagination, error) {
	page = page.Normalize()
	products, total, err := u.products.List(ctx, page)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return products, model.NewPagination(page, total), nil
}
