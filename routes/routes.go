package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"

	"order-api/controllers"
	"order-api/logging"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Orders    *controllers.OrderController
	Customers *controllers.CustomerController
	Products  *controllers.ProductController
	Health    *controllers.HealthController
}

// NewApp builds the fiber app with the shared error body and middleware stack.
func NewApp(log logrus.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "order-api",
		ErrorHandler:          controllers.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(log))
	return app
}

// Setup registers every API route.
func Setup(app *fiber.App, c Controllers) {
	app.Get("/health", c.Health.Health)

	orders := app.Group("/orders")
	orders.Post("/", c.Orders.CreateOrder)
	orders.Get("/", c.Orders.ListOrders)
	orders.Get("/:id", c.Orders.GetOrder)
	orders.Put("/:id", c.Orders.UpdateOrder)
	orders.Delete("/:id", c.Orders.DeleteOrder)

	customers := app.Group("/customers")
	customers.Get("/", c.Customers.ListCustomers)
	customers.Get("/number-of-products", c.Customers.CustomersByOrderCount)
	customers.Get("/:id/purchase-history", c.Customers.PurchaseHistory)

	app.Get("/products", c.Products.ListProducts)
	app.Get("/product/:id", c.Products.GetProduct)
}
