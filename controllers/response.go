package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"order-api/repository"
	"order-api/services"
)

// errorMapping pairs a sentinel with its HTTP status. A non-empty message
// replaces the error text in the response body.
type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{repository.ErrOrderNotFound, fiber.StatusNotFound, "Order not found"},
	{repository.ErrCustomerNotFound, fiber.StatusNotFound, "Customer not found"},
	{repository.ErrProductNotFound, fiber.StatusNotFound, "Product not found"},
	{services.ErrNoOrders, fiber.StatusNotFound, "No orders found"},
	{services.ErrNoCustomers, fiber.StatusNotFound, "No customers found"},
	{services.ErrNoProducts, fiber.StatusNotFound, "No products found"},
	{services.ErrForbiddenField, fiber.StatusForbidden, ""},
	{services.ErrInvalidOrderData, fiber.StatusBadRequest, ""},
	{repository.ErrDuplicateOrder, fiber.StatusBadRequest, ""},
}

// classify returns the status and message for a known error. ok is false
// for anything unexpected.
func classify(err error) (status int, message string, ok bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.message != "" {
				return m.status, m.message, true
			}
			return m.status, err.Error(), true
		}
	}
	return fiber.StatusInternalServerError, err.Error(), false
}

func respondError(ctx *fiber.Ctx, err error) error {
	status, message, _ := classify(err)
	return respondMessage(ctx, status, message)
}

func respondMessage(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"message": message})
}

// parseID reads a positive integer path parameter.
func parseID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := ctx.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// ErrorHandler renders framework and unhandled errors with the same
// {"message": ...} body the controllers use.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return respondMessage(ctx, status, err.Error())
}
