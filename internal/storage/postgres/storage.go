package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage uses. Narrowed to an
// interface so tests can substitute a pgxmock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage is the order repository backed by PostgreSQL.
type Storage struct {
	pool   DBPool
	logger *slog.Logger
}

// New creates storage with schema initialization. Money columns are NUMERIC;
// the shopspring decimal codec is registered on every connection.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
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

// Orders returns the repository view of the storage.
func (s *Storage) Orders() repository.OrderRepository {
	return s
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL,
            restaurant_id BIGINT NOT NULL,
            status TEXT NOT NULL,
            total_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
            placed_at TIMESTAMPTZ NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            food_item_id BIGINT NOT NULL,
            food_item_name TEXT NOT NULL,
            quantity INT NOT NULL,
            price NUMERIC(12,2) NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, placed_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant ON orders(restaurant_id, placed_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Save inserts the order or updates its mutable columns.
func (s *Storage) Save(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, user_id, restaurant_id, status, total_amount, placed_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   ON CONFLICT (id) DO UPDATE
                   SET status = EXCLUDED.status,
                       total_amount = EXCLUDED.total_amount,
                       placed_at = EXCLUDED.placed_at,
                       updated_at = EXCLUDED.updated_at`
	_, err := s.pool.Exec(ctx, query,
		order.ID, order.UserID, order.RestaurantID, order.Status,
		order.TotalAmount, order.PlacedAt, order.UpdatedAt)
	return err
}

// GetByID fetches a single order.
func (s *Storage) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	const query = `SELECT id, user_id, restaurant_id, status, total_amount, placed_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := s.pool.QueryRow(ctx, query, orderID).Scan(
		&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.TotalAmount, &o.PlacedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Delete removes the order row.
func (s *Storage) Delete(ctx context.Context, orderID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

// ListByUser returns orders of a user, newest first.
func (s *Storage) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, restaurant_id, status, total_amount, placed_at, updated_at
                   FROM orders WHERE user_id=$1 ORDER BY placed_at DESC`
	return s.listOrders(ctx, query, userID)
}

// ListByRestaurant returns orders of a restaurant, newest first.
func (s *Storage) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	const query = `SELECT id, user_id, restaurant_id, status, total_amount, placed_at, updated_at
                   FROM orders WHERE restaurant_id=$1 ORDER BY placed_at DESC`
	return s.listOrders(ctx, query, restaurantID)
}

func (s *Storage) listOrders(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.RestaurantID, &o.Status, &o.TotalAmount, &o.PlacedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ItemsByOrder returns the items of an order.
func (s *Storage) ItemsByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, food_item_id, food_item_name, quantity, price
                   FROM order_items WHERE order_id=$1`
	rows, err := s.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.FoodItemID, &item.FoodItemName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveItems upserts item rows within one transaction.
func (s *Storage) SaveItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	const query = `INSERT INTO order_items (id, order_id, food_item_id, food_item_name, quantity, price)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   ON CONFLICT (id) DO UPDATE
                   SET quantity = EXCLUDED.quantity`
	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			if _, err := tx.Exec(ctx, query,
				item.ID, item.OrderID, item.FoodItemID, item.FoodItemName, item.Quantity, item.Price); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteItem removes a single item row.
func (s *Storage) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrItemNotFound
	}
	return nil
}

// DeleteItemsByOrder removes all items of an order.
func (s *Storage) DeleteItemsByOrder(ctx context.Context, orderID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, orderID)
	return err
}

// WithinTransaction executes fn inside a transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error("rollback failed", slog.String("error", rbErr.Error()))
			}
			return
		}
		err = tx.Commit(ctx)
	}()

	return fn(tx)
}

// Ping reports database connectivity.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
