package model

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be >= 1")
	ErrCartNotFound    = errors.New("cart not found")
)
