package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quickbite/orderservice/internal/domain/model"
)

// OrderItemPayload carries a catalog snapshot of one line item.
type OrderItemPayload struct {
	FoodItemID   int64           `json:"foodItemId"`
	FoodItemName string          `json:"foodItemName"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the payload for order creation.
type CreateOrderRequest struct {
	UserID       int64              `json:"userId" binding:"required"`
	RestaurantID int64              `json:"restaurantId" binding:"required"`
	OrderItems   []OrderItemPayload `json:"orderItems" binding:"required"`
}

// UpdateStatusRequest is the payload for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateQuantityRequest is the payload for an item quantity change.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// OrderResponse is the order view returned by every endpoint.
type OrderResponse struct {
	OrderID      string             `json:"orderId"`
	UserID       int64              `json:"userId"`
	RestaurantID int64              `json:"restaurantId"`
	Status       string             `json:"orderStatus"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	PlacedAt     time.Time          `json:"placedAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	OrderItems   []OrderItemPayload `json:"orderItems"`
}

// MessageResponse carries a human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// FromDetails maps the domain view onto the response shape.
func FromDetails(details *model.OrderDetails) OrderResponse {
	items := make([]OrderItemPayload, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, OrderItemPayload{
			FoodItemID:   item.FoodItemID,
			FoodItemName: item.FoodItemName,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	return OrderResponse{
		OrderID:      details.Order.ID,
		UserID:       details.Order.UserID,
		RestaurantID: details.Order.RestaurantID,
		Status:       string(details.Order.Status),
		TotalAmount:  details.Order.TotalAmount,
		PlacedAt:     details.Order.PlacedAt,
		UpdatedAt:    details.Order.UpdatedAt,
		OrderItems:   items,
	}
}
