package models

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses:
// validation 400, not found 404, conflict 409, out-of-stock 400, empty cart 400.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrOutOfStock = errors.New("not enough stock available")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrValidation = errors.New("invalid input")
)
