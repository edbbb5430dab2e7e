package routes

import (
	"github.com/gofiber/fiber/v2"

	"sushitrack-backend/controllers"
	"sushitrack-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Idempotency guard FIRST (not tied to the request TX)
	api.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around handlers)
	api.Use(middlewares.RequestTx())

	// Stores
	api.Post("/stores", controllers.CreateStore)
	api.Get("/stores", controllers.GetStores)
	api.Put("/stores/:id", controllers.UpdateStore)

	// Products
	api.Post("/products", controllers.CreateProduct)
	api.Get("/products", controllers.GetProducts)
	api.Put("/products/:id", controllers.UpdateProduct)

	// Deliveries & recoveries (multipart, optional photo)
	api.Post("/deliveries", controllers.CreateDelivery)
	api.Post("/recoveries", controllers.CreateRecovery)

	// Invoices (billing runs; rows are immutable once created)
	api.Post("/invoices", controllers.CreateInvoice)
	api.Get("/invoices", controllers.GetInvoices)
	api.Get("/invoices/:id", controllers.GetInvoice)
	api.Get("/invoices/:id/pdf", controllers.InvoicePDF)
	api.Post("/invoices/:id/email", controllers.EmailInvoice)

	// Stats (per-product quantities over a window)
	api.Get("/stats", controllers.GetStats)
}
