package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/server/http/dto"
	"github.com/quickbite/orderservice/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	details, err := h.facade.CreateOrder(c.Request.Context(), req.UserID, req.RestaurantID, toItemInputs(req.OrderItems))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromDetails(details))
}

// Get handles GET /api/orders/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	details, err := h.facade.Order(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetails(details))
}

// ListByUser handles GET /api/orders/user/:userId.
func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}
	details, err := h.facade.OrdersByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(details) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "no orders found for this user"})
		return
	}
	c.JSON(http.StatusOK, toResponses(details))
}

// ListByRestaurant handles GET /api/orders/restaurant/:restaurantId.
func (h *OrderHandler) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := int64Param(c, "restaurantId")
	if !ok {
		return
	}
	details, err := h.facade.OrdersByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(details) == 0 {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "no orders found for this restaurant"})
		return
	}
	c.JSON(http.StatusOK, toResponses(details))
}

// UpdateStatus handles PUT /api/orders/:orderId/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	target := model.OrderStatus(req.Status)
	if !target.Valid() {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid status update"})
		return
	}

	details, err := h.facade.ChangeStatus(c.Request.Context(), c.Param("orderId"), target)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetails(details))
}

// Cancel handles POST /api/orders/:orderId/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	_, err := h.facade.CancelOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "order cancelled successfully"})
}

// AddItem handles POST /api/orders/:orderId/items.
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req dto.OrderItemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	details, err := h.facade.AddItem(c.Request.Context(), c.Param("orderId"), usecase.ItemInput{
		FoodItemID:   req.FoodItemID,
		FoodItemName: req.FoodItemName,
		Quantity:     req.Quantity,
		Price:        req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetails(details))
}

// RemoveItem handles DELETE /api/orders/:orderId/items/:foodItemId.
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	foodItemID, ok := int64Param(c, "foodItemId")
	if !ok {
		return
	}
	details, err := h.facade.RemoveItem(c.Request.Context(), c.Param("orderId"), foodItemID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetails(details))
}

// UpdateQuantity handles PUT /api/orders/:orderId/items/:foodItemId.
func (h *OrderHandler) UpdateQuantity(c *gin.Context) {
	foodItemID, ok := int64Param(c, "foodItemId")
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	details, err := h.facade.SetItemQuantity(c.Request.Context(), c.Param("orderId"), foodItemID, *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromDetails(details))
}

// Delete handles DELETE /api/orders/:orderId.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("orderId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "order deleted successfully"})
}

func toItemInputs(payloads []dto.OrderItemPayload) []usecase.ItemInput {
	items := make([]usecase.ItemInput, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, usecase.ItemInput{
			FoodItemID:   p.FoodItemID,
			FoodItemName: p.FoodItemName,
			Quantity:     p.Quantity,
			Price:        p.Price,
		})
	}
	return items
}

func toResponses(details []model.OrderDetails) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(details))
	for i := range details {
		responses = append(responses, dto.FromDetails(&details[i]))
	}
	return responses
}
