package dto

import (
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// GenerateDocumentRequest describes document generation payload. The type is
// checked against the recognized document kinds by the doctype binding rule.
type GenerateDocumentRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Type    string `json:"type" binding:"required,doctype"`
}

// DocumentResponse is the public projection of a document record.
type DocumentResponse struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	OrderNo     string    `json:"order_no,omitempty"`
	Type        string    `json:"type"`
	FileName    string    `json:"file_name"`
	Status      string    `json:"status"`
	CreatedBy   int64     `json:"created_by"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GenerateDocumentResponse carries the record and the rendered artifact.
type GenerateDocumentResponse struct {
	Document  DocumentResponse `json:"document"`
	PDFBase64 string           `json:"pdf_base64"`
}

// DocumentListResponse pairs document records with pagination info.
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination model.Pagination   `json:"pagination"`
}

// ToDocumentResponse projects a document record for API output.
func ToDocumentResponse(d *model.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:          d.ID,
		OrderID:     d.OrderID,
		Type:        string(d.Type),
		FileName:    d.FileName,
		Status:      d.Status,
		CreatedBy:   d.CreatedBy,
		GeneratedAt: d.GeneratedAt,
	}
	if d.Order != nil {
		resp.OrderNo = d.Order.OrderNo
	}
	return resp
}
