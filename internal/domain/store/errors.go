package store

import "errors"

var (
	ErrStoreNotFound        = errors.New("store profile not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with the same SKU already exists")
	ErrInsufficientStock    = errors.New("insufficient stock for this movement")
)
