package repository

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateOrder   = errors.New("duplicate submission: the same customer ordered this product moments ago")
)
