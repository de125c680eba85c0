package repository

import (
	"context"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	OrderID *int64
	Page    model.PageRequest
}

// NewDocument is the input for recording a generation event.
type NewDocument struct {
	OrderID   int64
	Type      model.DocumentType
	FileName  string
	Status    string
	CreatedBy int64
}

// DocumentRepository describes persistence operations for document records.
type DocumentRepository interface {
	Create(ctx context.Context, doc NewDocument) (*model.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]model.Document, int, error)
}
