package repository

import (
	"context"

	"github.com/quickbite/orderservice/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their
// items. Pure CRUD: invariants are the coordinator's responsibility. Absence
// of a row is reported as a domain not-found error, never a nil success.
type OrderRepository interface {
	Save(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	Delete(ctx context.Context, orderID string) error
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error)

	ItemsByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error)
	SaveItems(ctx context.Context, items []model.OrderItem) error
	DeleteItem(ctx context.Context, itemID string) error
	DeleteItemsByOrder(ctx context.Context, orderID string) error
}
