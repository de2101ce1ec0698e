package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/server/http/handlers"
	testhelpers "github.com/quickbite/orderservice/internal/test"
	"github.com/quickbite/orderservice/internal/usecase"
)

func detailsFixture() *model.OrderDetails {
	placed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &model.OrderDetails{
		Order: model.Order{
			ID:           "order-1",
			UserID:       1,
			RestaurantID: 10,
			Status:       model.OrderStatusInCart,
			TotalAmount:  decimal.RequireFromString("20.00"),
			PlacedAt:     placed,
			UpdatedAt:    placed,
		},
	}
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.OrderFacadeStub{
		CreateOrderFn: func(context.Context, int64, int64, []usecase.ItemInput) (*model.OrderDetails, error) {
			return detailsFixture(), nil
		},
		OrdersByUserFn: func(context.Context, int64) ([]model.OrderDetails, error) {
			return []model.OrderDetails{*detailsFixture()}, nil
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]any{
		"userId":       1,
		"restaurantId": 10,
		"orderItems": []map[string]any{
			{"foodItemId": 7, "foodItemName": "Margherita", "quantity": 2, "price": "10.00"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/users/1/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for user orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for get order, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/restaurants/10/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for empty restaurant orders, got %d", resp.Code)
	}
}

var _ handlers.OrderFacade = (*testhelpers.OrderFacadeStub)(nil)
