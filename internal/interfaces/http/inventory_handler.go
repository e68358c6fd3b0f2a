package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/dto"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// InventoryHandler maneja compras, reportes de stock y el libro de movimientos (protegido).
type InventoryHandler struct {
	purchase  *inventory.RecordPurchaseUseCase
	monitor   *inventory.StockMonitorUseCase
	valuation *inventory.ValuationUseCase
	ledger    *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	purchase *inventory.RecordPurchaseUseCase,
	monitor *inventory.StockMonitorUseCase,
	valuation *inventory.ValuationUseCase,
	ledger *inventory.LedgerUseCase,
) *InventoryHandler {
	return &InventoryHandler{purchase: purchase, monitor: monitor, valuation: valuation, ledger: ledger}
}

// RecordPurchase godoc
// @Summary      Registrar compra de mercancía
// @Description  Suma stock en la ubicación indicada y recalcula el costo promedio ponderado.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "product_id, location (warehouse|store), quantity, unit_cost"
// @Success      201   {object}  dto.ProductStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/purchases [post]
func (h *InventoryHandler) RecordPurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	product, err := h.purchase.RecordPurchase(c.Context(), inventory.PurchaseInput{
		ProductID: in.ProductID,
		Location:  entity.Location(in.Location),
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductStockResponse(product))
}

// LowStock godoc
// @Summary      Productos bajo su nivel mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductStockResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.monitor.LowStock(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.ProductStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductStockResponse(p))
	}
	return c.JSON(fiber.Map{"total": len(out), "products": out})
}

// LowMovingStock godoc
// @Summary      Productos con stock sin ventas recientes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int  false  "Ventana en días (default 30)"
// @Success      200  {array}   dto.ProductStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-moving-stock [get]
func (h *InventoryHandler) LowMovingStock(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", inventory.DefaultLowMovingWindowDays)
	products, err := h.monitor.LowMovingStock(c.Context(), windowDays)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.ProductStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductStockResponse(p))
	}
	return c.JSON(fiber.Map{"total": len(out), "window_days": windowDays, "products": out})
}

// ListMovements godoc
// @Summary      Libro de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true   "UUID del producto"
// @Param        limit       query  int     false  "Máximo de filas (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page.DefaultPage()
	movements, err := h.ledger.ListMovements(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.NewStockMovementResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// Valuation godoc
// @Summary      Valoración del inventario al costo promedio
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	report, err := h.valuation.Valuation(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	rows := make([]dto.ValuationRowResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, dto.NewValuationRowResponse(row))
	}
	return c.JSON(dto.ValuationResponse{
		Rows:       rows,
		TotalUnits: report.TotalUnits,
		TotalValue: report.TotalValue.Round(2),
	})
}
