package services

import "errors"

var (
	ErrInvalidOrderData = errors.New("missing or invalid data")
	ErrForbiddenField   = errors.New("field cannot be updated")
	ErrNoOrders         = errors.New("no orders found")
	ErrNoCustomers      = errors.New("no customers found")
	ErrNoProducts       = errors.New("no products found")
)
