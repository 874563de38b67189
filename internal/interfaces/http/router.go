package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/admin"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/auth"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/clients"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/invoices"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/payments"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/projects"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/quotations"
	"github.com/Jawbreaker1989/queenscorner-api/internal/application/workorders"
	"github.com/Jawbreaker1989/queenscorner-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC    *clients.UseCase
	QuotationUC *quotations.UseCase
	ProjectUC   *projects.UseCase
	WorkOrderUC *workorders.UseCase
	InvoiceUC   *invoices.UseCase
	PaymentUC   *payments.UseCase
	AuthUC      *auth.UseCase
	AdminUC     *admin.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo va protegido con Bearer Token
// salvo el login y el health check.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes
	clientesGroup := protected.Group("/clientes")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientesGroup.Post("/", clientHandler.Create)
	clientesGroup.Get("/", clientHandler.List)
	clientesGroup.Get("/:id", clientHandler.GetByID)
	clientesGroup.Put("/:id", clientHandler.Update)
	clientesGroup.Delete("/:id", clientHandler.Delete)

	// Cotizaciones
	cotizaciones := protected.Group("/cotizaciones")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	cotizaciones.Post("/", quotationHandler.Create)
	cotizaciones.Get("/", quotationHandler.List)
	cotizaciones.Get("/:id", quotationHandler.GetByID)
	cotizaciones.Put("/:id", quotationHandler.Update)
	cotizaciones.Patch("/:id/estado", quotationHandler.ChangeState)
	cotizaciones.Delete("/:id", quotationHandler.Delete)

	// Negocios
	negocios := protected.Group("/negocios")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	negocios.Post("/", projectHandler.Create)
	negocios.Get("/", projectHandler.List)
	negocios.Get("/:id", projectHandler.GetByID)
	negocios.Put("/:id", projectHandler.Update)
	negocios.Patch("/:id/estado", projectHandler.ChangeState)

	// Órdenes de trabajo
	ordenes := protected.Group("/ordenes-trabajo")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	ordenes.Post("/", workOrderHandler.Create)
	ordenes.Get("/", workOrderHandler.List)
	ordenes.Get("/:id", workOrderHandler.GetByID)
	ordenes.Put("/:id", workOrderHandler.Update)
	ordenes.Patch("/:id/estado", workOrderHandler.ChangeState)
	ordenes.Delete("/:id", workOrderHandler.Delete)

	// Facturas
	facturas := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	facturas.Post("/", invoiceHandler.Create)
	facturas.Get("/", invoiceHandler.List)
	facturas.Get("/:id", invoiceHandler.GetByID)
	facturas.Patch("/:id/estado", invoiceHandler.ChangeState)

	// Pagos
	pagos := protected.Group("/pagos")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	pagos.Post("/", paymentHandler.Create)
	pagos.Get("/", paymentHandler.ListByProject)
	pagos.Delete("/:id", paymentHandler.Delete)

	// Admin (solo rol admin)
	adminGroup := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	adminGroup.Delete("/clean-data", adminHandler.CleanData)
	adminGroup.Get("/stats", adminHandler.Stats)
}
