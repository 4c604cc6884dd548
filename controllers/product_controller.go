package controllers

import (
	"github.com/gofiber/fiber/v2"

	"order-api/services"
)

type ProductController struct {
	productService services.IProductService
}

func NewProductController(svc services.IProductService) *ProductController {
	return &ProductController{productService: svc}
}

// ListProducts handles GET /products.
func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	products, err := c.productService.ListProducts(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"products": products})
}

// GetProduct handles GET /product/:id.
func (c *ProductController) GetProduct(ctx *fiber.Ctx) error {
	id, err := parseID(ctx, "id")
	if err != nil {
		return err
	}

	product, err := c.productService.GetProduct(ctx.UserContext(), id)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(product)
}
