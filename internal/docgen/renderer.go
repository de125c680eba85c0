// Package docgen renders export trade documents as PDF artifacts.
package docgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nafru/exportdesk/internal/domain/model"
)

// CompanyInfo is the letterhead printed on every document.
type CompanyInfo struct {
	Name     string
	Tagline  string
	Location string
}

// Renderer produces PDF trade documents from order data.
type Renderer struct {
	company CompanyInfo
}

// NewRenderer creates Renderer with the given letterhead.
func NewRenderer(company CompanyInfo) *Renderer {
	return &Renderer{company: company}
}

var titles = map[model.DocumentType]string{
	model.DocumentCommercialInvoice:        "Commercial Invoice",
	model.DocumentCertificateOfOrigin:      "Certificate of Origin",
	model.DocumentPhytosanitaryCertificate: "Phytosanitary Certificate",
	model.DocumentPackingList:              "Packing List",
	model.DocumentBillOfLading:             "Bill of Lading",
}

// Fixed clause blocks required by customs documentation. One entry per
// recognized document type, no fallback.
var clauses = map[model.DocumentType][]string{
	model.DocumentCommercialInvoice: {
		"Payment Terms: As per agreement",
		"Delivery Terms: FOB Alexandria Port",
	},
	model.DocumentCertificateOfOrigin: {
		"Country of Origin: Egypt",
		"Certification: This is to certify that the goods described",
		"above are of Egyptian origin.",
	},
	model.DocumentPhytosanitaryCertificate: {
		"Plant Health Certificate",
		"The plants/products described above have been",
		"inspected and found free from quarantine pests.",
	},
	model.DocumentPackingList: {
		"Packing Details:",
		"Packed in cartons suitable for export",
		"Net Weight: As specified above",
	},
	model.DocumentBillOfLading: {
		"Vessel: TBD",
		"Port of Loading: Alexandria, Egypt",
		"Port of Discharge: As per destination",
	},
}

// Title returns the printable title of a document type.
func Title(t model.DocumentType) (string, bool) {
	title, ok := titles[t]
	return title, ok
}

// Clauses returns the fixed clause block of a document type.
func Clauses(t model.DocumentType) ([]string, bool) {
	lines, ok := clauses[t]
	return lines, ok
}

const bottomMargin = 270.0

// Render builds the PDF artifact for the order and document type. The order
// must carry its customer and items.
func (r *Renderer) Render(order *model.Order, docType model.DocumentType) ([]byte, error) {
	title, ok := titles[docType]
	if !ok {
		return nil, fmt.Errorf("no template for document type %q", docType)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 30, r.company.Name)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 40, r.company.Tagline)
	pdf.Text(20, 50, r.company.Location)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 70, title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 90, fmt.Sprintf("Order No: %s", order.OrderNo))
	pdf.Text(20, 100, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02/01/2006")))
	customerName, company, country := "", "N/A", ""
	if order.Customer != nil {
		customerName = order.Customer.Name
		country = order.Customer.Country
		if order.Customer.Company != nil {
			company = *order.Customer.Company
		}
	}
	pdf.Text(20, 110, fmt.Sprintf("Customer: %s", customerName))
	pdf.Text(20, 120, fmt.Sprintf("Company: %s", company))
	pdf.Text(20, 130, fmt.Sprintf("Country: %s", country))

	y := 150.0
	pdf.Text(20, y, "Order Items:")
	y += 10
	for i, item := range order.Items {
		y = advance(pdf, y)
		pdf.Text(25, y, fmt.Sprintf("%d. %s - %gkg @ %g %s/kg",
			i+1, item.ProductName, item.Quantity, item.PricePerKg, order.Currency))
		y += 10
	}

	y += 10
	y = advance(pdf, y)
	pdf.Text(20, y, fmt.Sprintf("Total Weight: %g kg", order.TotalKg))
	y += 10
	y = advance(pdf, y)
	pdf.Text(20, y, fmt.Sprintf("Total Amount: %g %s", order.TotalPrice, order.Currency))

	y += 20
	for _, line := range clauses[docType] {
		y = advance(pdf, y)
		pdf.Text(20, y, line)
		y += 10
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// advance starts a new page when the cursor runs past the printable area.
func advance(pdf *gofpdf.Fpdf, y float64) float64 {
	if y > bottomMargin {
		pdf.AddPage()
		return 30
	}
	return y
}
