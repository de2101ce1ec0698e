package test

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/domain/model"
)

// WalletStub is an in-memory wallet gateway.
type WalletStub struct {
	Balances map[int64]decimal.Decimal

	GetBalanceFn func(context.Context, int64) (decimal.Decimal, error)
	SetBalanceFn func(context.Context, int64, decimal.Decimal) (decimal.Decimal, error)

	SetCalls int
}

// NewWalletStub constructs a wallet stub with the given balances.
func NewWalletStub(balances map[int64]decimal.Decimal) *WalletStub {
	if balances == nil {
		balances = make(map[int64]decimal.Decimal)
	}
	return &WalletStub{Balances: balances}
}

func (s *WalletStub) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	if s.GetBalanceFn != nil {
		return s.GetBalanceFn(ctx, userID)
	}
	balance, ok := s.Balances[userID]
	if !ok {
		return decimal.Zero, domainErrors.ErrUserNotFound
	}
	return balance, nil
}

func (s *WalletStub) SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (decimal.Decimal, error) {
	if s.SetBalanceFn != nil {
		return s.SetBalanceFn(ctx, userID, balance)
	}
	if _, ok := s.Balances[userID]; !ok {
		return decimal.Zero, domainErrors.ErrUserNotFound
	}
	s.SetCalls++
	s.Balances[userID] = balance
	return balance, nil
}

// RestaurantStub is an in-memory restaurant directory gateway.
type RestaurantStub struct {
	Restaurants map[int64]model.Restaurant

	GetFn func(context.Context, int64) (*model.Restaurant, error)
}

// NewRestaurantStub constructs a directory stub with the given restaurants.
func NewRestaurantStub(restaurants map[int64]model.Restaurant) *RestaurantStub {
	if restaurants == nil {
		restaurants = make(map[int64]model.Restaurant)
	}
	return &RestaurantStub{Restaurants: restaurants}
}

func (s *RestaurantStub) Get(ctx context.Context, restaurantID int64) (*model.Restaurant, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, restaurantID)
	}
	rest, ok := s.Restaurants[restaurantID]
	if !ok {
		return nil, domainErrors.ErrRestaurantNotFound
	}
	return &rest, nil
}
