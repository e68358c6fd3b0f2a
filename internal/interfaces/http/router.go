package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
	"github.com/tu-usuario/servitec-crm/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	RecordPurchase *inventory.RecordPurchaseUseCase
	CreateTransfer *inventory.CreateTransferUseCase
	FulfillInvoice *inventory.FulfillInvoiceUseCase
	RecordActivity *inventory.RecordActivityUseCase
	StockMonitor   *inventory.StockMonitorUseCase
	Valuation      *inventory.ValuationUseCase
	Ledger         *inventory.LedgerUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token del servicio de auth)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole("admin", "bodeguero"), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole("admin", "bodeguero"), productHandler.Update)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RecordPurchase, deps.StockMonitor, deps.Valuation, deps.Ledger)
	invGroup.Post("/purchases", inventoryHandler.RecordPurchase)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/low-moving-stock", inventoryHandler.LowMovingStock)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/valuation", inventoryHandler.Valuation)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.CreateTransfer, deps.Ledger)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)

	// Invoices (protegido, solo descarga de stock)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.FulfillInvoice)
	invoices.Post("/fulfill", invoiceHandler.Fulfill)

	// Activities (protegido)
	activities := protected.Group("/activities")
	activityHandler := NewActivityHandler(deps.RecordActivity)
	activities.Post("/", activityHandler.Record)
	activities.Get("/", activityHandler.ListByTechnician)

	// Alerts (protegido)
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.StockMonitor)
	alerts.Get("/", alertHandler.List)
	alerts.Post("/scan", RequireRole("admin", "bodeguero"), alertHandler.Scan)
	alerts.Post("/:id/ack", alertHandler.Acknowledge)
}
