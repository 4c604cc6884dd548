package controllers

import (
	"github.com/gofiber/fiber/v2"

	"order-api/services"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService // Dependency pada antarmuka layanan
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// CreateOrder handles the POST /orders endpoint.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	// Parse body permintaan, hanya field yang diizinkan
	input, err := services.ParseCreateOrderInput(ctx.Body())
	if err != nil {
		return respondError(ctx, err)
	}

	// Panggil layer layanan untuk menangani logika bisnis
	order, err := c.orderService.CreateOrder(ctx.UserContext(), input)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders handles GET /orders.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	orders, err := c.orderService.ListOrders(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"orders": orders})
}

// GetOrder handles GET /orders/:id.
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	order, err := c.orderService.GetOrder(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(order)
}

// UpdateOrder handles PUT /orders/:id.
func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	input, err := services.ParseUpdateOrderInput(ctx.Body())
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := c.orderService.UpdateOrder(ctx.UserContext(), id, input)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// DeleteOrder handles DELETE /orders/:id.
func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.orderService.DeleteOrder(ctx.UserContext(), id); err != nil {
		status, message, known := classify(err)
		if !known {
			message = "Failed to delete order: " + err.Error()
		}
		return respondMessage(ctx, status, message)
	}

	return respondMessage(ctx, fiber.StatusOK, "Order deleted successfully")
}
