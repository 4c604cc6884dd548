package controllers

import (
	"github.com/gofiber/fiber/v2"

	"order-api/services"
)

// CustomerController serves customer listings and the per-customer aggregates.
type CustomerController struct {
	customerService services.ICustomerService
}

func NewCustomerController(svc services.ICustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// ListCustomers handles GET /customers.
func (c *CustomerController) ListCustomers(ctx *fiber.Ctx) error {
	customers, err := c.customerService.ListCustomers(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"customers": customers})
}

// CustomersByOrderCount handles GET /customers/number-of-products.
func (c *CustomerController) CustomersByOrderCount(ctx *fiber.Ctx) error {
	counts, err := c.customerService.CustomersByOrderCount(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"customers": counts})
}

// PurchaseHistory handles GET /customers/:id/purchase-history.
func (c *CustomerController) PurchaseHistory(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	history, err := c.customerService.PurchaseHistory(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"purchase_history": history})
}
