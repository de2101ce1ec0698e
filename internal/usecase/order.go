package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickbite/orderservice/internal/adapter/restaurant"
	"github.com/quickbite/orderservice/internal/adapter/wallet"
	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
	"github.com/quickbite/orderservice/internal/domain/repository"
)

// CancelWindow is the period after placement during which a placed order may
// still be cancelled with a full refund. The boundary is inclusive: an order
// exactly CancelWindow old is still cancellable.
const CancelWindow = 30 * time.Second

// ItemInput carries a catalog snapshot for an item being added to an order.
// Name and price are trusted as given; the order service does not re-price
// against the live catalog.
type ItemInput struct {
	FoodItemID   int64
	FoodItemName string
	Quantity     int
	Price        decimal.Decimal
}

// OrderUseCase is the order lifecycle coordinator. It owns the state machine,
// total recomputation, the cancellation window and the wallet debit/credit
// choreography. The repository and gateways below it hold no business logic.
//
// Known consistency gaps, by contract rather than accident: there is no
// per-order lock, so two concurrent placements of the same cart can both read
// a sufficient balance and double-debit; and a persist failure after a
// successful wallet call leaves the debit (or credit) unreconciled. The
// wallet call is therefore made last, immediately before the final persist,
// to keep that window as small as possible.
type OrderUseCase struct {
	orders      repository.OrderRepository
	wallets     wallet.Client
	restaurants restaurant.Client
	logger      *slog.Logger
	now         func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, wallets wallet.Client, restaurants restaurant.Client, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		wallets:     wallets,
		restaurants: restaurants,
		logger:      logger,
		now:         time.Now,
	}
}

// Create validates the user and restaurant, checks wallet cover for the cart
// total and persists a new order in IN_CART together with its item snapshots.
func (u *OrderUseCase) Create(ctx context.Context, userID, restaurantID int64, items []ItemInput) (*model.OrderDetails, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrInvalidInput)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: negative item price", domainErrors.ErrInvalidInput)
		}
	}

	balance, err := u.wallets.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	rest, err := u.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !rest.IsOpen {
		return nil, domainErrors.ErrRestaurantClosed
	}

	now := u.now()
	order := &model.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       model.OrderStatusInCart,
		PlacedAt:     now,
		UpdatedAt:    now,
	}

	orderItems := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, model.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			FoodItemID:   item.FoodItemID,
			FoodItemName: item.FoodItemName,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	order.TotalAmount = model.ItemsTotal(orderItems)
	if balance.LessThan(order.TotalAmount) {
		return nil, domainErrors.ErrInsufficientBalance
	}

	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	if err := u.orders.SaveItems(ctx, orderItems); err != nil {
		return nil, err
	}

	u.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.Int64("user_id", userID),
		slog.Int64("restaurant_id", restaurantID),
	)
	return &model.OrderDetails{Order: *order, Items: orderItems}, nil
}

// Get returns an order with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := u.orders.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: *order, Items: items}, nil
}

// ListByUser returns all orders of a user with their items.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.OrderDetails, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.withItems(ctx, orders)
}

// ListByRestaurant returns all orders of a restaurant with their items.
func (u *OrderUseCase) ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.OrderDetails, error) {
	orders, err := u.orders.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return u.withItems(ctx, orders)
}

func (u *OrderUseCase) withItems(ctx context.Context, orders []model.Order) ([]model.OrderDetails, error) {
	details := make([]model.OrderDetails, 0, len(orders))
	for _, order := range orders {
		items, err := u.orders.ItemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, model.OrderDetails{Order: order, Items: items})
	}
	return details, nil
}

// ChangeStatus moves an order along the lifecycle. Reachable transitions are
// IN_CART->PLACED, PLACED->COMPLETED, and ->CANCELLED via Cancel, which keeps
// the cancellation rules identical on both entry points. Anything else is an
// invalid status update.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, orderID string, target model.OrderStatus) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch {
	case target == model.OrderStatusPlaced && order.Status == model.OrderStatusInCart:
		return u.place(ctx, order)
	case target == model.OrderStatusCancelled:
		return u.Cancel(ctx, orderID)
	case target == model.OrderStatusCompleted && order.Status == model.OrderStatusPlaced:
		order.Status = model.OrderStatusCompleted
		order.UpdatedAt = u.now()
		if err := u.orders.Save(ctx, order); err != nil {
			return nil, err
		}
		u.logger.Info("order completed", slog.String("order_id", order.ID))
		return u.details(ctx, order)
	default:
		return nil, domainErrors.ErrInvalidStatusChange
	}
}

func (u *OrderUseCase) place(ctx context.Context, order *model.Order) (*model.OrderDetails, error) {
	balance, err := u.wallets.GetBalance(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(order.TotalAmount) {
		u.logger.Warn("insufficient balance for placement", slog.String("order_id", order.ID))
		return nil, domainErrors.ErrInsufficientBalance
	}

	newBalance := balance.Sub(order.TotalAmount)
	if _, err := u.wallets.SetBalance(ctx, order.UserID, newBalance); err != nil {
		// Debit did not commit; the order stays IN_CART.
		return nil, err
	}

	order.Status = model.OrderStatusPlaced
	order.PlacedAt = u.now()
	order.UpdatedAt = order.PlacedAt
	if err := u.orders.Save(ctx, order); err != nil {
		// Wallet already debited; this save failing leaves the debit
		// unreconciled.
		u.logger.Error("order save failed after wallet debit",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("persist placed order: %w", err)
	}

	u.logger.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("total", order.TotalAmount.String()),
	)
	return u.details(ctx, order)
}

// Cancel cancels a placed order and refunds the wallet. Only orders placed at
// most CancelWindow ago qualify.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID string) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != model.OrderStatusPlaced {
		return nil, domainErrors.ErrOrderNotCancellable
	}
	if order.PlacedAt.IsZero() {
		return nil, domainErrors.ErrOrderNotPlacedYet
	}
	if u.now().Sub(order.PlacedAt) > CancelWindow {
		u.logger.Warn("cancellation window exceeded", slog.String("order_id", order.ID))
		return nil, domainErrors.ErrCancelWindowExceeded
	}

	balance, err := u.wallets.GetBalance(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if _, err := u.wallets.SetBalance(ctx, order.UserID, balance.Add(order.TotalAmount)); err != nil {
		// Refund did not commit; the cancellation is not recorded.
		return nil, err
	}

	order.Status = model.OrderStatusCancelled
	order.UpdatedAt = u.now()
	if err := u.orders.Save(ctx, order); err != nil {
		u.logger.Error("order save failed after wallet refund",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("persist cancelled order: %w", err)
	}

	u.logger.Info("order cancelled", slog.String("order_id", order.ID))
	return u.details(ctx, order)
}

// AddItem appends an item snapshot to a cart order. Items for the same food
// item are kept as separate rows, matching the catalog-snapshot behavior.
func (u *OrderUseCase) AddItem(ctx context.Context, orderID string, input ItemInput) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusInCart {
		return nil, domainErrors.ErrOrderNotInCart
	}
	if input.Quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: negative item price", domainErrors.ErrInvalidInput)
	}

	item := model.OrderItem{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		FoodItemID:   input.FoodItemID,
		FoodItemName: input.FoodItemName,
		Quantity:     input.Quantity,
		Price:        input.Price,
	}
	if err := u.orders.SaveItems(ctx, []model.OrderItem{item}); err != nil {
		return nil, err
	}

	order.TotalAmount = order.TotalAmount.Add(item.LineTotal())
	order.UpdatedAt = u.now()
	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	return u.details(ctx, order)
}

// RemoveItem removes the line for a food item from a cart order.
func (u *OrderUseCase) RemoveItem(ctx context.Context, orderID string, foodItemID int64) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusInCart {
		return nil, domainErrors.ErrOrderNotInCart
	}

	item, err := u.findItem(ctx, orderID, foodItemID)
	if err != nil {
		return nil, err
	}

	if err := u.orders.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}

	order.TotalAmount = order.TotalAmount.Sub(item.LineTotal())
	order.UpdatedAt = u.now()
	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	return u.details(ctx, order)
}

// SetItemQuantity updates the quantity of an item in a cart order. Quantity
// zero removes the line; a negative quantity is rejected.
func (u *OrderUseCase) SetItemQuantity(ctx context.Context, orderID string, foodItemID int64, quantity int) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusInCart {
		return nil, domainErrors.ErrOrderNotInCart
	}

	item, err := u.findItem(ctx, orderID, foodItemID)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}

	delta := item.Price.Mul(decimal.NewFromInt(int64(quantity - item.Quantity)))
	order.TotalAmount = order.TotalAmount.Add(delta)
	order.UpdatedAt = u.now()

	if quantity == 0 {
		if err := u.orders.DeleteItem(ctx, item.ID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := u.orders.SaveItems(ctx, []model.OrderItem{*item}); err != nil {
			return nil, err
		}
	}

	if err := u.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	return u.details(ctx, order)
}

// Delete removes a cart order and all of its items.
func (u *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != model.OrderStatusInCart {
		return domainErrors.ErrOrderNotDeletable
	}

	if err := u.orders.DeleteItemsByOrder(ctx, orderID); err != nil {
		return err
	}
	if err := u.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	u.logger.Info("order deleted", slog.String("order_id", orderID))
	return nil
}

func (u *OrderUseCase) findItem(ctx context.Context, orderID string, foodItemID int64) (*model.OrderItem, error) {
	items, err := u.orders.ItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].FoodItemID == foodItemID {
			return &items[i], nil
		}
	}
	return nil, domainErrors.ErrItemNotFound
}

func (u *OrderUseCase) details(ctx context.Context, order *model.Order) (*model.OrderDetails, error) {
	items, err := u.orders.ItemsByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: *order, Items: items}, nil
}
