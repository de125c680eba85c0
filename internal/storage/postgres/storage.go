package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap it
// for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type shipmentRepository struct {
	storage *Storage
}

type documentRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Shipments() repository.ShipmentRepository {
	return &shipmentRepository{storage: s}
}

func (s *Storage) Documents() repository.DocumentRepository {
	return &documentRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            language TEXT NOT NULL DEFAULT 'en',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            phone TEXT,
            company TEXT,
            address TEXT,
            city TEXT,
            country TEXT NOT NULL,
            language TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            category TEXT,
            origin TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_sequences (
            year INT PRIMARY KEY,
            last_seq INT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_no TEXT UNIQUE NOT NULL,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            total_kg DOUBLE PRECISION NOT NULL,
            total_price DOUBLE PRECISION NOT NULL,
            currency TEXT NOT NULL,
            notes TEXT,
            status TEXT NOT NULL,
            created_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity DOUBLE PRECISION NOT NULL,
            price_per_kg DOUBLE PRECISION NOT NULL,
            total_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS shipments (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            container_no TEXT,
            vessel_name TEXT,
            port_of_loading TEXT,
            port_of_discharge TEXT,
            etd TIMESTAMPTZ,
            eta TIMESTAMPTZ,
            carrier TEXT,
            notes TEXT,
            status TEXT NOT NULL,
            created_by BIGINT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS documents (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            type TEXT NOT NULL,
            file_name TEXT NOT NULL,
            status TEXT NOT NULL,
            created_by BIGINT NOT NULL REFERENCES users(id),
            generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_shipments_order ON shipments(order_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_order ON documents(order_id, generated_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (email, name, password_hash, role, language)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash, user.Role, user.Language).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, language, created_at
                   FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Language, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, password_hash, role, language, created_at
                   FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Language, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, email, phone, company, address, city, country, language)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	created := *customer
	err := r.storage.pool.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Company,
		customer.Address, customer.City, customer.Country, customer.Language).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

const customerColumns = `id, name, email, phone, company, address, city, country, language, created_at`

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address, &c.City, &c.Country, &c.Language, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	const query = `SELECT ` + customerColumns + ` FROM customers WHERE email=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *customerRepository) List(ctx context.Context, filter repository.CustomerFilter) ([]model.Customer, int, error) {
	const where = ` WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%' OR company ILIKE '%'||$1||'%')`
	const query = `SELECT ` + customerColumns + ` FROM customers` + where +
		` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	const countQuery = `SELECT COUNT(*) FROM customers` + where

	page := filter.Page.Normalize()
	rows, err := r.storage.pool.Query(ctx, query, filter.Search, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address, &c.City, &c.Country, &c.Language, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// --- OrderRepository implementation ---

// Create allocates the next order number from the per-year counter and inserts
// the order and its items in one transaction. The counter update and the
// unique constraint on order_no keep concurrent creations collision free.
// The stored order is returned with product names and its customer attached.
func (r *orderRepository) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	totalKg, totalPrice := order.Totals()
	year := time.Now().Year()

	var created model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const seqQuery = `INSERT INTO order_sequences (year, last_seq) VALUES ($1, 1)
                          ON CONFLICT (year) DO UPDATE SET last_seq = order_sequences.last_seq + 1
                          RETURNING last_seq`
		var seq int
		if err := tx.QueryRow(ctx, seqQuery, year).Scan(&seq); err != nil {
			return err
		}
		orderNo := fmt.Sprintf("ORD-%d-%04d", year, seq)

		const insertOrder = `INSERT INTO orders (order_no, customer_id, total_kg, total_price, currency, notes, status, created_by)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                             RETURNING id, created_at`
		err := tx.QueryRow(ctx, insertOrder,
			orderNo, order.CustomerID, totalKg, totalPrice, order.Currency,
			order.Notes, model.OrderStatusPending, order.CreatedBy).
			Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		created.OrderNo = orderNo
		created.CustomerID = order.CustomerID
		created.TotalKg = totalKg
		created.TotalPrice = totalPrice
		created.Currency = order.Currency
		created.Notes = order.Notes
		created.Status = model.OrderStatusPending
		created.CreatedBy = order.CreatedBy

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, price_per_kg, total_price)
                            VALUES ($1, $2, $3, $4, $5) RETURNING id`
		for _, item := range order.Items {
			line := model.OrderItem{
				OrderID:    created.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				PricePerKg: item.PricePerKg,
				TotalPrice: item.Quantity * item.PricePerKg,
			}
			err := tx.QueryRow(ctx, insertItem,
				created.ID, item.ProductID, item.Quantity, item.PricePerKg, line.TotalPrice).
				Scan(&line.ID)
			if err != nil {
				if isForeignKeyViolation(err) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			created.Items = append(created.Items, line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.populateProductNames(ctx, created.Items); err != nil {
		return nil, err
	}
	customer, err := (&customerRepository{storage: r.storage}).GetByID(ctx, created.CustomerID)
	if err != nil {
		return nil, err
	}
	created.Customer = customer
	return &created, nil
}

func (r *orderRepository) populateProductNames(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	const query = `SELECT id, name FROM products WHERE id = ANY($1)`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	names := make(map[int64]string, len(ids))
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		items[i].ProductName = names[items[i].ProductID]
	}
	return nil
}

const orderColumns = `o.id, o.order_no, o.customer_id, o.total_kg, o.total_price, o.currency, o.notes, o.status, o.created_by, o.created_at,
                      c.id, c.name, c.email, c.phone, c.company, c.address, c.city, c.country, c.language, c.created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var c model.Customer
	err := row.Scan(
		&o.ID, &o.OrderNo, &o.CustomerID, &o.TotalKg, &o.TotalPrice, &o.Currency, &o.Notes, &o.Status, &o.CreatedBy, &o.CreatedAt,
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address, &c.City, &c.Country, &c.Language, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	o.Customer = &c
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id
                   WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	const where = ` WHERE ($1 = '' OR o.status = $1) AND ($2::BIGINT IS NULL OR o.customer_id = $2)`
	const query = `SELECT ` + orderColumns + `
                   FROM orders o JOIN customers c ON c.id = o.customer_id` + where +
		` ORDER BY o.created_at DESC LIMIT $3 OFFSET $4`
	const countQuery = `SELECT COUNT(*) FROM orders o` + where

	page := filter.Page.Normalize()
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Status), filter.CustomerID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	refs := make([]*model.Order, len(result))
	for i := range result {
		refs[i] = &result[i]
	}
	if err := r.loadItems(ctx, refs); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, string(filter.Status), filter.CustomerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*model.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}

	const query = `SELECT i.id, i.order_id, i.product_id, p.name, i.quantity, i.price_per_kg, i.total_price
                   FROM order_items i JOIN products p ON p.id = i.product_id
                   WHERE i.order_id = ANY($1)
                   ORDER BY i.id`
	rows, err := r.storage.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.PricePerKg, &item.TotalPrice); err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

// --- ShipmentRepository implementation ---

func (r *shipmentRepository) Create(ctx context.Context, shipment repository.NewShipment) (*model.Shipment, error) {
	const query = `INSERT INTO shipments (order_id, container_no, vessel_name, port_of_loading, port_of_discharge, etd, eta, carrier, notes, status, created_by)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING id, created_at`
	created := model.Shipment{
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
	}
	err := r.storage.pool.QueryRow(ctx, query,
		shipment.OrderID, shipment.ContainerNo, shipment.VesselName,
		shipment.PortOfLoading, shipment.PortOfDischarge, shipment.ETD, shipment.ETA,
		shipment.Carrier, shipment.Notes, model.ShipmentStatusPending, shipment.CreatedBy).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *shipmentRepository) List(ctx context.Context, filter repository.ShipmentFilter) ([]model.Shipment, int, error) {
	const where = ` WHERE ($1 = '' OR s.status = $1) AND ($2::BIGINT IS NULL OR o.customer_id = $2)`
	const query = `SELECT s.id, s.order_id, s.container_no, s.vessel_name, s.port_of_loading, s.port_of_discharge,
                          s.etd, s.eta, s.carrier, s.notes, s.status, s.created_by, s.created_at,
                          o.order_no, o.customer_id
                   FROM shipments s JOIN orders o ON o.id = s.order_id` + where +
		` ORDER BY s.created_at DESC LIMIT $3 OFFSET $4`
	const countQuery = `SELECT COUNT(*) FROM shipments s JOIN orders o ON o.id = s.order_id` + where

	page := filter.Page.Normalize()
	rows, err := r.storage.pool.Query(ctx, query, string(filter.Status), filter.CustomerID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Shipment
	for rows.Next() {
		var sh model.Shipment
		parent := model.Order{}
		err := rows.Scan(
			&sh.ID, &sh.OrderID, &sh.ContainerNo, &sh.VesselName, &sh.PortOfLoading, &sh.PortOfDischarge,
			&sh.ETD, &sh.ETA, &sh.Carrier, &sh.Notes, &sh.Status, &sh.CreatedBy, &sh.CreatedAt,
			&parent.OrderNo, &parent.CustomerID,
		)
		if err != nil {
			return nil, 0, err
		}
		parent.ID = sh.OrderID
		sh.Order = &parent
		result = append(result, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, string(filter.Status), filter.CustomerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// --- DocumentRepository implementation ---

func (r *documentRepository) Create(ctx context.Context, doc repository.NewDocument) (*model.Document, error) {
	const query = `INSERT INTO documents (order_id, type, file_name, status, created_by)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, generated_at`
	created := model.Document{
		OrderID:   doc.OrderID,
		Type:      doc.Type,
		FileName:  doc.FileName,
		Status:    doc.Status,
		CreatedBy: doc.CreatedBy,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		doc.OrderID, doc.Type, doc.FileName, doc.Status, doc.CreatedBy).
		Scan(&created.ID, &created.GeneratedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (r *documentRepository) List(ctx context.Context, filter repository.DocumentFilter) ([]model.Document, int, error) {
	const where = ` WHERE ($1::BIGINT IS NULL OR d.order_id = $1)`
	const query = `SELECT d.id, d.order_id, d.type, d.file_name, d.status, d.created_by, d.generated_at, o.order_no, o.customer_id
                   FROM documents d JOIN orders o ON o.id = d.order_id` + where +
		` ORDER BY d.generated_at DESC LIMIT $2 OFFSET $3`
	const countQuery = `SELECT COUNT(*) FROM documents d` + where

	page := filter.Page.Normalize()
	rows, err := r.storage.pool.Query(ctx, query, filter.OrderID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Document
	for rows.Next() {
		var d model.Document
		parent := model.Order{}
		err := rows.Scan(&d.ID, &d.OrderID, &d.Type, &d.FileName, &d.Status, &d.CreatedBy, &d.GeneratedAt, &parent.OrderNo, &parent.CustomerID)
		if err != nil {
			return nil, 0, err
		}
		parent.ID = d.OrderID
		d.Order = &parent
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, countQuery, filter.OrderID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, category, origin) VALUES ($1, $2, $3) RETURNING id, created_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query, product.Name, product.Category, product.Origin).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, category, origin, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Category, &p.Origin, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, page model.PageRequest) ([]model.Product, int, error) {
	const query = `SELECT id, name, category, origin, created_at FROM products
                   ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	page = page.Normalize()
	rows, err := r.storage.pool.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Origin, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
