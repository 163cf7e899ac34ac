package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/Saby007/go-microservices-demo/internal/domain/errors"
	"github.com/Saby007/go-microservices-demo/internal/domain/model"
)

const orderColumns = `id, user_id, product_name, quantity, price, status, created_at, updated_at`

// OrderStorage implements repository.OrderRepository backed by PostgreSQL.
type OrderStorage struct {
	pool   pgxPool
	logger *slog.Logger
}

// NewOrderStorage connects to the order database and initializes its schema.
func NewOrderStorage(ctx context.Context, dsn string, logger *slog.Logger) (*OrderStorage, error) {
	pool, err := connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	storage := &OrderStorage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *OrderStorage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *OrderStorage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            product_name TEXT NOT NULL,
            quantity INT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Create inserts the order and returns it with its assigned id.
func (s *OrderStorage) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (user_id, product_name, quantity, price, status)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at, updated_at`
	stored := *order
	err := s.pool.QueryRow(ctx, query, order.UserID, order.ProductName, order.Quantity, order.Price, order.Status).
		Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &stored, nil
}

// GetByID returns the order with the given id.
func (s *OrderStorage) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.UserID, &o.ProductName, &o.Quantity, &o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns all orders sorted by creation time.
func (s *OrderStorage) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	return s.queryOrders(ctx, query)
}

// ListByUser returns orders referencing the given user.
func (s *OrderStorage) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	return s.queryOrders(ctx, query, userID)
}

// ListByStatus returns orders currently in the given status.
func (s *OrderStorage) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC`
	return s.queryOrders(ctx, query, status)
}

// ListRecent returns orders that are not awaiting user validation.
func (s *OrderStorage) ListRecent(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status <> $1 ORDER BY created_at DESC`
	return s.queryOrders(ctx, query, model.OrderStatusPendingValidation)
}

func (s *OrderStorage) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductName, &o.Quantity, &o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update replaces mutable order fields wholesale.
func (s *OrderStorage) Update(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `UPDATE orders
                   SET user_id=$2, product_name=$3, quantity=$4, price=$5, status=$6, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	stored := *order
	err := s.pool.QueryRow(ctx, query, order.ID, order.UserID, order.ProductName, order.Quantity, order.Price, order.Status).
		Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &stored, nil
}

// Delete removes the order with the given id.
func (s *OrderStorage) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of stored orders.
func (s *OrderStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// SelectBatchForReconciliation returns a batch of orders awaiting user
// validation, skipping rows locked by concurrent reconcilers.
func (s *OrderStorage) SelectBatchForReconciliation(ctx context.Context, limit int) ([]model.Order, error) {
	selectQuery := `SELECT ` + orderColumns + `
                    FROM orders
                    WHERE status = $1
                    ORDER BY created_at
                    LIMIT $2
                    FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := withinTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, model.OrderStatusPendingValidation, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o model.Order
			if err := rows.Scan(&o.ID, &o.UserID, &o.ProductName, &o.Quantity, &o.Price, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus persists the status for an order.
func (s *OrderStorage) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	tag, err := s.pool.Exec(ctx, `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// SeedDemoData inserts the sample order rows when the table is empty.
func (s *OrderStorage) SeedDemoData(ctx context.Context) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []model.Order{
		{UserID: 1, ProductName: "Laptop", Quantity: 1, Price: 999.99, Status: model.OrderStatusCompleted},
		{UserID: 2, ProductName: "Mouse", Quantity: 2, Price: 25.50, Status: model.OrderStatusPending},
		{UserID: 1, ProductName: "Keyboard", Quantity: 1, Price: 75.00, Status: model.OrderStatusProcessing},
		{UserID: 3, ProductName: "Monitor", Quantity: 1, Price: 299.99, Status: model.OrderStatusCompleted},
		{UserID: 2, ProductName: "Headphones", Quantity: 1, Price: 150.00, Status: model.OrderStatusPending},
		{UserID: 4, ProductName: "Webcam", Quantity: 1, Price: 89.99, Status: model.OrderStatusProcessing},
	}
	for _, o := range samples {
		if _, err := s.Create(ctx, &o); err != nil {
			return fmt.Errorf("seed order: %w", err)
		}
	}

	s.logger.Info("sample order data initialized", slog.Int("count", len(samples)))
	return nil
}

// HealthCheck verifies database connectivity.
func (s *OrderStorage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
