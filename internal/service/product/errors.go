package product

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidStock          = errors.New("invalid stock")

	ErrProductNotFound = errors.New("product not found")
	ErrForbidden       = errors.New("operation requires admin role")
)
