package test

import (
	"context"
	"sync"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
)

// OrderRepositoryStub keeps orders and items in memory. Individual operations
// can be overridden per test through the Fn fields; unset overrides fall back
// to the in-memory behavior.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	orders map[string]model.Order
	items  map[string]model.OrderItem

	SaveFn       func(context.Context, *model.Order) error
	GetByIDFn    func(context.Context, string) (*model.Order, error)
	DeleteFn     func(context.Context, string) error
	SaveItemsFn  func(context.Context, []model.OrderItem) error
	DeleteItemFn func(context.Context, string) error

	SaveCalls int
}

// NewOrderRepositoryStub constructs an empty in-memory repository.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		orders: make(map[string]model.Order),
		items:  make(map[string]model.OrderItem),
	}
}

// Seed stores an order with its items directly, bypassing overrides.
func (s *OrderRepositoryStub) Seed(order model.Order, items ...model.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
	for _, item := range items {
		s.items[item.ID] = item
	}
}

// Stored returns the currently persisted copy of an order.
func (s *OrderRepositoryStub) Stored(orderID string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	return o, ok
}

func (s *OrderRepositoryStub) Save(ctx context.Context, order *model.Order) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCalls++
	s.orders[order.ID] = *order
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[orderID]; ok {
		copied := order
		return &copied, nil
	}
	return nil, domainErrors.ErrOrderNotFound
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; !ok {
		return domainErrors.ErrOrderNotFound
	}
	delete(s.orders, orderID)
	return nil
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.orders {
		if o.RestaurantID == restaurantID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ItemsByOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.OrderItem
	for _, item := range s.items {
		if item.OrderID == orderID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) SaveItems(ctx context.Context, items []model.OrderItem) error {
	if s.SaveItemsFn != nil {
		return s.SaveItemsFn(ctx, items)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.items[item.ID] = item
	}
	return nil
}

func (s *OrderRepositoryStub) DeleteItem(ctx context.Context, itemID string) error {
	if s.DeleteItemFn != nil {
		return s.DeleteItemFn(ctx, itemID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return domainErrors.ErrItemNotFound
	}
	delete(s.items, itemID)
	return nil
}

func (s *OrderRepositoryStub) DeleteItemsByOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, item := range s.items {
		if item.OrderID == orderID {
			delete(s.items, id)
		}
	}
	return nil
}
