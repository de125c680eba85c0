package repository

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Search string
	Page   model.PageRequest
}

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]model.Customer, int, error)
}
