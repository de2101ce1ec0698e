package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
	testhelpers "github.com/quickbite/orderservice/internal/test"
	"github.com/quickbite/orderservice/internal/usecase"
)

func newFacade() (*OrderFacade, *testhelpers.OrderRepositoryStub, *testhelpers.WalletStub) {
	repo := testhelpers.NewOrderRepositoryStub()
	wallets := testhelpers.NewWalletStub(map[int64]decimal.Decimal{
		1: decimal.RequireFromString("100.00"),
	})
	restaurants := testhelpers.NewRestaurantStub(map[int64]model.Restaurant{
		10: {ID: 10, IsOpen: true},
	})
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uc := usecase.NewOrderUseCase(repo, wallets, restaurants, logger)
	return NewOrderFacade(uc), repo, wallets
}

func TestOrderFacadeLifecycle(t *testing.T) {
	facade, repo, _ := newFacade()
	ctx := context.Background()

	details, err := facade.CreateOrder(ctx, 1, 10, []usecase.ItemInput{
		{FoodItemID: 7, FoodItemName: "Margherita", Quantity: 2, Price: decimal.RequireFromString("10.00")},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if details.Order.Status != model.OrderStatusInCart {
		t.Fatalf("expected IN_CART, got %s", details.Order.Status)
	}
	if !details.Order.TotalAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected total 20.00, got %s", details.Order.TotalAmount)
	}

	stored, err := repo.GetByID(ctx, details.Order.ID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if stored.UserID != 1 {
		t.Fatalf("unexpected stored user %d", stored.UserID)
	}

	fetched, err := facade.Order(ctx, details.Order.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(fetched.Items))
	}

	byUser, err := facade.OrdersByUser(ctx, 1)
	if err != nil || len(byUser) != 1 {
		t.Fatalf("unexpected user listing: %v %v", byUser, err)
	}
	byRestaurant, err := facade.OrdersByRestaurant(ctx, 10)
	if err != nil || len(byRestaurant) != 1 {
		t.Fatalf("unexpected restaurant listing: %v %v", byRestaurant, err)
	}
}

func TestOrderFacadeItemsAndDelete(t *testing.T) {
	facade, _, _ := newFacade()
	ctx := context.Background()

	details, err := facade.CreateOrder(ctx, 1, 10, []usecase.ItemInput{
		{FoodItemID: 7, FoodItemName: "Margherita", Quantity: 1, Price: decimal.RequireFromString("10.00")},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	orderID := details.Order.ID

	details, err = facade.AddItem(ctx, orderID, usecase.ItemInput{
		FoodItemID: 8, FoodItemName: "Fries", Quantity: 1, Price: decimal.RequireFromString("5.00"),
	})
	if err != nil {
		t.Fatalf("add item returned error: %v", err)
	}
	if !details.Order.TotalAmount.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("expected total 15.00, got %s", details.Order.TotalAmount)
	}

	details, err = facade.SetItemQuantity(ctx, orderID, 8, 2)
	if err != nil {
		t.Fatalf("set quantity returned error: %v", err)
	}
	if !details.Order.TotalAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected total 20.00, got %s", details.Order.TotalAmount)
	}

	details, err = facade.RemoveItem(ctx, orderID, 8)
	if err != nil {
		t.Fatalf("remove item returned error: %v", err)
	}
	if len(details.Items) != 1 {
		t.Fatalf("expected one item left, got %d", len(details.Items))
	}

	if err := facade.DeleteOrder(ctx, orderID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.Order(ctx, orderID); !errors.Is(err, domainErrors.ErrOrderNotFound) {
		t.Fatalf("expected order not found after delete, got %v", err)
	}
}

func TestOrderFacadeStatusAndCancel(t *testing.T) {
	facade, _, wallets := newFacade()
	ctx := context.Background()

	details, err := facade.CreateOrder(ctx, 1, 10, []usecase.ItemInput{
		{FoodItemID: 7, FoodItemName: "Margherita", Quantity: 2, Price: decimal.RequireFromString("10.00")},
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	orderID := details.Order.ID

	details, err = facade.ChangeStatus(ctx, orderID, model.OrderStatusPlaced)
	if err != nil {
		t.Fatalf("place returned error: %v", err)
	}
	if details.Order.Status != model.OrderStatusPlaced {
		t.Fatalf("expected PLACED, got %s", details.Order.Status)
	}
	if balance := wallets.Balances[1]; !balance.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("expected balance 80.00 after placement, got %s", balance)
	}

	details, err = facade.CancelOrder(ctx, orderID)
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if details.Order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", details.Order.Status)
	}
	if balance := wallets.Balances[1]; !balance.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected balance 100.00 after refund, got %s", balance)
	}
}
