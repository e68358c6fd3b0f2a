package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/dto"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
)

// InvoiceHandler descarga de stock del punto de venta al facturar (protegido).
// El CRUD de facturas (cliente, totales, impuestos) vive en el módulo CRM externo;
// aquí solo se aplica el efecto sobre inventario.
type InvoiceHandler struct {
	fulfill *inventory.FulfillInvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(fulfill *inventory.FulfillInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{fulfill: fulfill}
}

// Fulfill godoc
// @Summary      Descontar stock de punto de venta por factura
// @Description  Aplica todas las líneas o ninguna. Si alguna línea excede el stock
//               disponible responde 409 con el detalle de faltantes en details.
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillInvoiceRequest  true  "items: [{product_id, quantity}]"
// @Success      200   {object}  dto.FulfillInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/fulfill [post]
func (h *InvoiceHandler) Fulfill(c *fiber.Ctx) error {
	var in dto.FulfillInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	items := make([]inventory.InvoiceItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.InvoiceItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	products, err := h.fulfill.FulfillInvoice(c.Context(), items, GetUserID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	resp := dto.FulfillInvoiceResponse{Products: make([]dto.ProductStockResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.NewProductStockResponse(p))
	}
	return c.JSON(resp)
}
