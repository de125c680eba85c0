package docgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nafru/exportdesk/internal/domain/model"
)

func testCompany() CompanyInfo {
	return CompanyInfo{Name: "NAFRU", Tagline: "Egyptian Fruit Export Company", Location: "Cairo, Egypt"}
}

func testOrder() *model.Order {
	company := "Acme Trading"
	return &model.Order{
		ID:         1,
		OrderNo:    "ORD-2026-0001",
		CustomerID: 5,
		Customer: &model.Customer{
			ID:      5,
			Name:    "Acme",
			Email:   "a@x.com",
			Company: &company,
			Country: "Jordan",
		},
		Items: []model.OrderItem{
			{ProductID: 1, ProductName: "Oranges", Quantity: 100, PricePerKg: 2, TotalPrice: 200},
		},
		TotalKg:    100,
		TotalPrice: 200,
		Currency:   "USD",
		CreatedAt:  time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestTitleAndClauses(t *testing.T) {
	allTypes := []model.DocumentType{
		model.DocumentCommercialInvoice,
		model.DocumentCertificateOfOrigin,
		model.DocumentPhytosanitaryCertificate,
		model.DocumentPackingList,
		model.DocumentBillOfLading,
	}
	for _, dt := range allTypes {
		title, ok := Title(dt)
		if !ok || title == "" {
			t.Fatalf("expected title for %s", dt)
		}
		lines, ok := Clauses(dt)
		if !ok || len(lines) == 0 {
			t.Fatalf("expected clauses for %s", dt)
		}
	}

	if _, ok := Title("RECEIPT"); ok {
		t.Fatal("unknown type must have no title")
	}
	if _, ok := Clauses("RECEIPT"); ok {
		t.Fatal("unknown type must have no clauses")
	}
}

func TestClauseTexts(t *testing.T) {
	lines, _ := Clauses(model.DocumentCertificateOfOrigin)
	joined := strings.Join(lines, " ")
	if !strings.Contains(joined, "Country of Origin: Egypt") {
		t.Fatalf("unexpected certificate of origin clauses: %q", joined)
	}

	lines, _ = Clauses(model.DocumentCommercialInvoice)
	if lines[1] != "Delivery Terms: FOB Alexandria Port" {
		t.Fatalf("unexpected invoice clause: %q", lines[1])
	}
}

func TestRender(t *testing.T) {
	r := NewRenderer(testCompany())
	for dt := range clauses {
		artifact, err := r.Render(testOrder(), dt)
		if err != nil {
			t.Fatalf("render %s: %v", dt, err)
		}
		if len(artifact) == 0 {
			t.Fatalf("expected non-empty artifact for %s", dt)
		}
		if !bytes.HasPrefix(artifact, []byte("%PDF")) {
			t.Fatalf("artifact for %s is not a PDF", dt)
		}
	}
}

func TestRenderUnknownType(t *testing.T) {
	r := NewRenderer(testCompany())
	if _, err := r.Render(testOrder(), "RECEIPT"); err == nil {
		t.Fatal("expected error for unknown document type")
	}
}

func TestRenderManyItemsPaginates(t *testing.T) {
	r := NewRenderer(testCompany())
	order := testOrder()
	for i := 0; i < 40; i++ {
		order.Items = append(order.Items, model.OrderItem{ProductName: "Mangoes", Quantity: 10, PricePerKg: 3})
	}
	artifact, err := r.Render(order, model.DocumentPackingList)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(artifact) == 0 {
		t.Fatal("expected non-empty artifact")
	}
}
