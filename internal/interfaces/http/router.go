package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dashboard-api/internal/application/auth"
	"github.com/jhoicas/dashboard-api/internal/application/invoices"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceActions *invoices.Actions
	CustomerUC     *invoices.CustomerUseCase
	AuthUC         *auth.AuthUseCase
	Dispatcher     *auth.Dispatcher
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Dispatcher)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Invoices (protegido)
	invoicesGroup := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceActions)
	invoicesGroup.Post("/", invoiceHandler.Create)
	invoicesGroup.Get("/", invoiceHandler.List)
	invoicesGroup.Get("/:id", invoiceHandler.GetByID)
	invoicesGroup.Put("/:id", invoiceHandler.Update)
	invoicesGroup.Delete("/:id", invoiceHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
}
