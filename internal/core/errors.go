package core

import "errors"

// Rejection taxonomy. All are synchronous precondition failures: the
// action is refused up front and no state changes. None are retried.
var (
	// ErrUnauthorized covers unknown staff, inactive staff and roles
	// missing the required permission token.
	ErrUnauthorized = errors.New("staff is not permitted to perform this action")

	// ErrInvalidOrderState rejects an action the order's current status
	// does not allow, e.g. billing with unsent items or editing a
	// billed order.
	ErrInvalidOrderState = errors.New("action is not valid for the order's current status")

	// ErrLockedItem rejects mutation of a line already sent to kitchen.
	ErrLockedItem = errors.New("order item has been sent to kitchen and is locked")

	// ErrInvalidKOTTransition rejects skipping or reversing a ticket
	// status step.
	ErrInvalidKOTTransition = errors.New("kot status can only advance one step forward")

	// ErrOutOfStock rejects adding a menu item with no stock left.
	ErrOutOfStock = errors.New("menu item is out of stock")

	// ErrAlreadyReceived rejects receiving a purchase order twice.
	ErrAlreadyReceived = errors.New("purchase order has already been received")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrTableNotFound     = errors.New("table not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrKOTNotFound       = errors.New("kot not found")
	ErrPONotFound        = errors.New("purchase order not found")
	ErrBadCredentials    = errors.New("invalid pin")
)
