package handlers

import (
	"context"

	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/usecase"
)

// OrderFacade encapsulates the order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, userID, restaurantID int64, items []usecase.ItemInput) (*model.OrderDetails, error)
	Order(ctx context.Context, orderID string) (*model.OrderDetails, error)
	OrdersByUser(ctx context.Context, userID int64) ([]model.OrderDetails, error)
	OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]model.OrderDetails, error)
	ChangeStatus(ctx context.Context, orderID string, target model.OrderStatus) (*model.OrderDetails, error)
	CancelOrder(ctx context.Context, orderID string) (*model.OrderDetails, error)
	AddItem(ctx context.Context, orderID string, item usecase.ItemInput) (*model.OrderDetails, error)
	RemoveItem(ctx context.Context, orderID string, foodItemID int64) (*model.OrderDetails, error)
	SetItemQuantity(ctx context.Context, orderID string, foodItemID int64, quantity int) (*model.OrderDetails, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
