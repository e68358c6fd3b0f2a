package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/dto"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// TransferHandler maneja traslados bodega <-> punto de venta (protegido).
type TransferHandler struct {
	create *inventory.CreateTransferUseCase
	ledger *inventory.LedgerUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(create *inventory.CreateTransferUseCase, ledger *inventory.LedgerUseCase) *TransferHandler {
	return &TransferHandler{create: create, ledger: ledger}
}

// Create godoc
// @Summary      Crear traslado entre ubicaciones
// @Description  Mueve stock entre bodega y punto de venta. Si se indica técnico,
//               registra además la actividad asociada (best-effort: un fallo en la
//               bitácora no revierte el traslado y se reporta en activity_warning).
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "product_id, from_location, to_location, quantity, technician_name + activity_type (opcional)"
// @Success      201   {object}  dto.CreateTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.create.CreateTransfer(c.Context(), inventory.TransferInput{
		ProductID:      in.ProductID,
		FromLocation:   entity.Location(in.FromLocation),
		ToLocation:     entity.Location(in.ToLocation),
		Quantity:       in.Quantity,
		TechnicianName: in.TechnicianName,
		ActivityType:   in.ActivityType,
		Notes:          in.Notes,
		CreatedBy:      GetUserID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	resp := dto.CreateTransferResponse{
		Transfer:   dto.NewTransferResponse(result.Transfer),
		Product:    dto.NewProductStockResponse(result.Product),
		ActivityID: result.ActivityID,
	}
	if result.ActivityErr != nil {
		resp.ActivityWarning = "traslado aplicado pero el registro de actividad falló: " + result.ActivityErr.Error()
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto (UUID)"
// @Param        limit       query  int     false  "Máximo de filas (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page.DefaultPage()
	transfers, err := h.ledger.ListTransfers(c.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, dto.NewTransferResponse(t))
	}
	return c.JSON(fiber.Map{"total": len(out), "transfers": out})
}

// GetByID godoc
// @Summary      Consultar un traslado
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	transfer, err := h.ledger.GetTransfer(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewTransferResponse(transfer))
}
