package repository

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// ProductRepository describes persistence operations for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, page model.PageRequest) ([]model.Product, int, error)
}
