package model

import "time"

// DocumentType enumerates the trade documents the company issues.
type DocumentType string

const (
	DocumentCommercialInvoice        DocumentType = "COMMERCIAL_INVOICE"
	DocumentCertificateOfOrigin      DocumentType = "CERTIFICATE_OF_ORIGIN"
	DocumentPhytosanitaryCertificate DocumentType = "PHYTOSANITARY_CERTIFICATE"
	DocumentPackingList              DocumentType = "PACKING_LIST"
	DocumentBillOfLading             DocumentType = "BILL_OF_LADING"
)

// ParseDocumentType resolves a raw value into a known document type.
// Unknown values are rejected, never defaulted.
func ParseDocumentType(raw string) (DocumentType, bool) {
	t := DocumentType(raw)
	switch t {
	case DocumentCommercialInvoice, DocumentCertificateOfOrigin,
		DocumentPhytosanitaryCertificate, DocumentPackingList, DocumentBillOfLading:
		return t, true
	}
	return "", false
}

// DocumentStatusGenerated marks a successfully rendered document record.
const DocumentStatusGenerated = "GENERATED"

// Document records a generation event for an order's trade document.
// Immutable once created; the rendered artifact is returned inline to the caller.
type Document struct {
	ID          int64
	OrderID     int64
	Order       *Order
	Type        DocumentType
	FileName    string
	Status      string
	CreatedBy   int64
	GeneratedAt time.Time
}
