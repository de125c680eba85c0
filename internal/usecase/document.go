package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// DocumentRenderer produces the PDF artifact for an order and document type.
type DocumentRenderer interface {
	Render(order *model.Order, docType model.DocumentType) ([]byte, error)
}

// DocumentUseCase encapsulates trade document generation and listing.
type DocumentUseCase struct {
	documents repository.DocumentRepository
	orders    repository.OrderRepository
	renderer  DocumentRenderer
	now       func() time.Time
}

// NewDocumentUseCase constructs DocumentUseCase.
func NewDocumentUseCase(documents repository.DocumentRepository, orders repository.OrderRepository, renderer DocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{documents: documents, orders: orders, renderer: renderer, now: time.Now}
}

// Generate renders the requested document for an order and records the
// generation event. Unknown types are rejected, never defaulted; a missing
// order leaves no record behind.
func (u *DocumentUseCase) Generate(ctx context.Context, actor model.UserPayload, orderID int64, rawType string) (*model.Document, []byte, error) {
	docType, ok := model.ParseDocumentType(rawType)
	if !ok {
		return nil, nil, domainErrors.ErrInvalidDocumentType
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	artifact, err := u.renderer.Render(order, docType)
	if err != nil {
		return nil, nil, err
	}

	fileName := fmt.Sprintf("%s_%s_%d.pdf", docType, order.OrderNo, u.now().UnixMilli())
	doc, err := u.documents.Create(ctx, repository.NewDocument{
		OrderID:   order.ID,
		Type:      docType,
		FileName:  fileName,
		Status:    model.DocumentStatusGenerated,
		CreatedBy: actor.ID,
	})
	if err != nil {
		return nil, nil, err
	}
	return doc, artifact, nil
}

// List returns document records, newest first, optionally filtered by order.
func (u *DocumentUseCase) List(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, model.Pagination, error) {
	filter.Page = filter.Page.Normalize()
	documents, total, err := u.documents.List(ctx, filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return documents, model.NewPagination(filter.Page, total), nil
}
