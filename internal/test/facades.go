package test

import (
	"context"

	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/usecase"
)

// OrderFacadeStub implements the handler facade with per-method overrides.
type OrderFacadeStub struct {
	CreateOrderFn        func(ctx context.Context, userID, restaurantID int64, items []usecase.ItemInput) (*model.OrderDetails, error)
	OrderFn              func(ctx context.Context, orderID string) (*model.OrderDetails, error)
	OrdersByUserFn       func(ctx context.Context, userID int64) ([]model.OrderDetails, error)
	OrdersByRestaurantFn func(ctx context.Context, restaurantID int64) ([]model.OrderDetails, error)
	ChangeStatusFn       func(ctx context.Context, orderID string, target model.OrderStatus) (*model.OrderDetails, error)
	CancelOrderFn        func(ctx context.Context, orderID string) (*model.OrderDetails, error)
	AddItemFn            func(ctx context.Context, orderID string, item usecase.ItemInput) (*model.OrderDetails, error)
	RemoveItemFn         func(ctx context.Context, orderID string, foodItemID int64) (*model.OrderDetails, error)
	SetItemQuantityFn    func(ctx context.Context, orderID string, foodItemID int64, quantity int) (*model.OrderDetails, error)
	DeleteOrderFn        func(ctx context.Context, orderID string) error
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, userID, restaurantID int64, items []usecase.ItemInput) (*model.OrderDetails, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, userID, restaurantID, items)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) OrdersByUser(ctx context.Context, userID int64) ([]model.OrderDetails, error) {
	if s.OrdersByUserFn != nil {
		return s.OrdersByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s OrderFacadeStub) OrdersByRestaurant(ctx context.Context, restaurantID int64) ([]model.OrderDetails, error) {
	if s.OrdersByRestaurantFn != nil {
		return s.OrdersByRestaurantFn(ctx, restaurantID)
	}
	return nil, nil
}

func (s OrderFacadeStub) ChangeStatus(ctx context.Context, orderID string, target model.OrderStatus) (*model.OrderDetails, error) {
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, orderID, target)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, orderID)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) AddItem(ctx context.Context, orderID string, item usecase.ItemInput) (*model.OrderDetails, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, orderID, item)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) RemoveItem(ctx context.Context, orderID string, foodItemID int64) (*model.OrderDetails, error) {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, orderID, foodItemID)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) SetItemQuantity(ctx context.Context, orderID string, foodItemID int64, quantity int) (*model.OrderDetails, error) {
	if s.SetItemQuantityFn != nil {
		return s.SetItemQuantityFn(ctx, orderID, foodItemID, quantity)
	}
	return &model.OrderDetails{}, nil
}

func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, orderID)
	}
	return nil
}
