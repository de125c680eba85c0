package test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *user
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.ByEmail[stored.Email] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub stores customers in-memory with search support.
type CustomerRepositoryStub struct {
	Customers []*model.Customer
	Next      int64
	Err       error
}

func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{Next: 1}
}

func (s *CustomerRepositoryStub) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Customers {
		if existing.Email == customer.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *customer
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Customers = append(s.Customers, &stored)
	return &stored, nil
}

func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CustomerRepositoryStub) List(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Customer
	for i := len(s.Customers) - 1; i >= 0; i-- {
		c := s.Customers[i]
		if filter.Search != "" && !customerMatches(c, filter.Search) {
			continue
		}
		matched = append(matched, *c)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

func customerMatches(c *model.Customer, search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Name), search) || strings.Contains(strings.ToLower(c.Email), search) {
		return true
	}
	return c.Company != nil && strings.Contains(strings.ToLower(*c.Company), search)
}

// OrderRepositoryStub stores orders in-memory, allocating sequential order
// numbers the same way the real repository does. Safe for concurrent creates.
type OrderRepositoryStub struct {
	mu        sync.Mutex
	Orders    []*model.Order
	Customers *CustomerRepositoryStub
	Products  *ProductRepositoryStub
	Seq       map[int]int
	Next      int64
	Err       error
}

func NewOrderRepositoryStub(customers *CustomerRepositoryStub, products *ProductRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{Customers: customers, Products: products, Seq: make(map[int]int), Next: 1}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	totalKg, totalPrice := order.Totals()
	year := time.Now().Year()
	s.Seq[year]++

	stored := &model.Order{
		ID:         s.Next,
		OrderNo:    fmt.Sprintf("ORD-%d-%04d", year, s.Seq[year]),
		CustomerID: order.CustomerID,
		TotalKg:    totalKg,
		TotalPrice: totalPrice,
		Currency:   order.Currency,
		Notes:      order.Notes,
		Status:     model.OrderStatusPending,
		CreatedBy:  order.CreatedBy,
		CreatedAt:  time.Now(),
	}
	s.Next++

	if s.Customers != nil {
		if customer, err := s.Customers.GetByID(ctx, order.CustomerID); err == nil {
			stored.Customer = customer
		}
	}
	for i, item := range order.Items {
		line := model.OrderItem{
			ID:         int64(i + 1),
			OrderID:    stored.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			PricePerKg: item.PricePerKg,
			TotalPrice: item.Quantity * item.PricePerKg,
		}
		if s.Products != nil {
			if product, err := s.Products.GetByID(ctx, item.ProductID); err == nil {
				line.ProductName = product.Name
			}
		}
		stored.Items = append(stored.Items, line)
	}
	s.Orders = append(s.Orders, stored)
	return stored, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Order
	for i := len(s.Orders) - 1; i >= 0; i-- {
		o := s.Orders[i]
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.CustomerID != nil && o.CustomerID != *filter.CustomerID {
			continue
		}
		matched = append(matched, *o)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

// ShipmentRepositoryStub stores shipments in-memory.
type ShipmentRepositoryStub struct {
	Shipments []*model.Shipment
	Orders    *OrderRepositoryStub
	Next      int64
	Err       error
}

func NewShipmentRepositoryStub(orders *OrderRepositoryStub) *ShipmentRepositoryStub {
	return &ShipmentRepositoryStub{Orders: orders, Next: 1}
}

func (s *ShipmentRepositoryStub) Create(ctx context.Context, shipment repository.NewShipment) (*model.Shipment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := &model.Shipment{
		ID:              s.Next,
		OrderID:         shipment.OrderID,
		ContainerNo:     shipment.ContainerNo,
		VesselName:      shipment.VesselName,
		PortOfLoading:   shipment.PortOfLoading,
		PortOfDischarge: shipment.PortOfDischarge,
		ETD:             shipment.ETD,
		ETA:             shipment.ETA,
		Carrier:         shipment.Carrier,
		Notes:           shipment.Notes,
		Status:          model.ShipmentStatusPending,
		CreatedBy:       shipment.CreatedBy,
		CreatedAt:       time.Now(),
	}
	s.Next++
	if s.Orders != nil {
		if order, err := s.Orders.GetByID(ctx, shipment.OrderID); err == nil {
			stored.Order = order
		}
	}
	s.Shipments = append(s.Shipments, stored)
	return stored, nil
}

func (s *ShipmentRepositoryStub) List(ctx context.Context, filter repository.ShipmentFilter) ([]model.Shipment, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Shipment
	for i := len(s.Shipments) - 1; i >= 0; i-- {
		sh := s.Shipments[i]
		if filter.Status != "" && sh.Status != filter.Status {
			continue
		}
		if filter.CustomerID != nil {
			if sh.Order == nil || sh.Order.CustomerID != *filter.CustomerID {
				continue
			}
		}
		matched = append(matched, *sh)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

// DocumentRepositoryStub stores document records in-memory.
type DocumentRepositoryStub struct {
	Documents []*model.Document
	Next      int64
	Err       error
}

func NewDocumentRepositoryStub() *DocumentRepositoryStub {
	return &DocumentRepositoryStub{Next: 1}
}

func (s *DocumentRepositoryStub) Create(ctx context.Context, doc repository.NewDocument) (*model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := &model.Document{
		ID:          s.Next,
		OrderID:     doc.OrderID,
		Type:        doc.Type,
		FileName:    doc.FileName,
		Status:      doc.Status,
		CreatedBy:   doc.CreatedBy,
		GeneratedAt: time.Now(),
	}
	s.Next++
	s.Documents = append(s.Documents, stored)
	return stored, nil
}

func (s *DocumentRepositoryStub) List(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var matched []model.Document
	for i := len(s.Documents) - 1; i >= 0; i-- {
		d := s.Documents[i]
		if filter.OrderID != nil && d.OrderID != *filter.OrderID {
			continue
		}
		matched = append(matched, *d)
	}
	return paginate(matched, filter.Page), len(matched), nil
}

// ProductRepositoryStub stores catalog entries in-memory.
type ProductRepositoryStub struct {
	Products []*model.Product
	Next     int64
	Err      error
}

func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Next: 1}
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *product
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.Products = append(s.Products, &stored)
	return &stored, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, page model.PageRequest) ([]model.Product, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	var all []model.Product
	for i := len(s.Products) - 1; i >= 0; i-- {
		all = append(all, *s.Products[i])
	}
	return paginate(all, page), len(all), nil
}

func paginate[T any](items []T, page model.PageRequest) []T {
	page = page.Normalize()
	offset := page.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
