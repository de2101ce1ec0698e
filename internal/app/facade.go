package app

import (
	"context"

	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/usecase"
)

// OrderFacade is the application surface the HTTP layer talks to.
type OrderFacade struct {
	orders *usecase.OrderUseCase
}

// NewOrderFacade constructs OrderFacade.
func NewOrderFacade(orders *usecase.OrderUseCase) *OrderFacade {
	return &OrderFacade{orders: orders}
}

func (f *OrderFacade) CreateOrder(ctx context.Context, userID, restaurantID int64, items []usecase.ItemInput) (*model.OrderDetails, error) {
	return f.orders.Create(ctx, userID, restaurantID, items)
}

func (f *OrderFacade) Order(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *OrderFacade) OrdersByUser(ctx context.Context, userID int64) ([]model.OrderDetails, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *OrderFacade) OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]model.OrderDetails, error) {
	return f.orders.ListByRestaurant(ctx, restaurantID)
}

func (f *OrderFacade) ChangeStatus(ctx context.Context, orderID string, target model.OrderStatus) (*model.OrderDetails, error) {
	return f.orders.ChangeStatus(ctx, orderID, target)
}

func (f *OrderFacade) CancelOrder(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	return f.orders.Cancel(ctx, orderID)
}

func (f *OrderFacade) AddItem(ctx context.Context, orderID string, item usecase.ItemInput) (*model.OrderDetails, error) {
	return f.orders.AddItem(ctx, orderID, item)
}

func (f *OrderFacade) RemoveItem(ctx context.Context, orderID string, foodItemID int64) (*model.OrderDetails, error) {
	return f.orders.RemoveItem(ctx, orderID, foodItemID)
}

func (f *OrderFacade) SetItemQuantity(ctx context.Context, orderID string, foodItemID int64, quantity int) (*model.OrderDetails, error) {
	return f.orders.SetItemQuantity(ctx, orderID, foodItemID, quantity)
}

func (f *OrderFacade) DeleteOrder(ctx context.Context, orderID string) error {
	return f.orders.Delete(ctx, orderID)
}
