package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle state.
type OrderStatus string

const (
	OrderStatusInCart    OrderStatus = "IN_CART"
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusInCart, OrderStatusPlaced, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is a cart or placed purchase tying a user to a restaurant.
type Order struct {
	ID           string
	UserID       int64
	RestaurantID int64
	Status       OrderStatus
	TotalAmount  decimal.Decimal
	PlacedAt     time.Time
	UpdatedAt    time.Time
}

// OrderItem is one line entry belonging to an order. Name and price are
// snapshots taken at the time of addition; later catalog changes do not
// affect existing orders.
type OrderItem struct {
	ID           string
	OrderID      string
	FoodItemID   int64
	FoodItemName string
	Quantity     int
	Price        decimal.Decimal
}

// LineTotal returns price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderDetails is the order header together with its current items.
type OrderDetails struct {
	Order Order
	Items []OrderItem
}

// ItemsTotal sums price x quantity over items.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
