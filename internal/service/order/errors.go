package order

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingPurchaser  = errors.New("missing purchaser identity")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidItem       = errors.New("invalid cart item")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrTotalMismatch     = errors.New("submitted total does not match item sum")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidUserFilter = errors.New("invalid user filter")

	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("operation requires admin role")
)
