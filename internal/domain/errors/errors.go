package errors

import (
	"errors"
	"fmt"
)

// Classification sentinels. Every specific error below wraps exactly one of
// them, so callers dispatch with errors.Is against the class.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("service temporarily unavailable")
)

var (
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrRestaurantNotFound = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrItemNotFound       = fmt.Errorf("item %w in order", ErrNotFound)

	ErrRestaurantClosed     = fmt.Errorf("%w: restaurant is closed", ErrInvalidInput)
	ErrInsufficientBalance  = fmt.Errorf("%w: insufficient wallet balance", ErrInvalidInput)
	ErrOrderNotInCart       = fmt.Errorf("%w: cannot modify non-cart order", ErrInvalidInput)
	ErrInvalidQuantity      = fmt.Errorf("%w: invalid item quantity", ErrInvalidInput)
	ErrInvalidStatusChange  = fmt.Errorf("%w: invalid status update", ErrInvalidInput)
	ErrOrderNotCancellable  = fmt.Errorf("%w: only placed orders can be cancelled", ErrInvalidInput)
	ErrOrderNotPlacedYet    = fmt.Errorf("%w: order has not been placed yet", ErrInvalidInput)
	ErrCancelWindowExceeded = fmt.Errorf("%w: cancellation window exceeded", ErrInvalidInput)
	ErrOrderNotDeletable    = fmt.Errorf("%w: only orders in cart can be deleted", ErrInvalidInput)
)
