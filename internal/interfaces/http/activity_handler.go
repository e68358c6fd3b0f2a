package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/dto"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
)

// ActivityHandler bitácora de actividades de técnicos (protegido).
type ActivityHandler struct {
	record *inventory.RecordActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(record *inventory.RecordActivityUseCase) *ActivityHandler {
	return &ActivityHandler{record: record}
}

// Record godoc
// @Summary      Registrar actividad de técnico
// @Description  Registro manual, sin traslado asociado. Las actividades ligadas a
//               traslados se registran automáticamente al crear el traslado.
// @Tags         activities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordActivityRequest  true  "technician_name, activity_type, product_id, product_name, quantity"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	var workDate time.Time
	if in.WorkDate != nil {
		workDate = *in.WorkDate
	}
	activity, err := h.record.Record(c.Context(), inventory.RecordActivityInput{
		TechnicianName: in.TechnicianName,
		ActivityType:   in.ActivityType,
		ProductID:      in.ProductID,
		ProductName:    in.ProductName,
		Quantity:       in.Quantity,
		Notes:          in.Notes,
		WorkDate:       workDate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewActivityResponse(activity))
}

// ListByTechnician godoc
// @Summary      Listar actividades de un técnico
// @Tags         activities
// @Security     Bearer
// @Produce      json
// @Param        technician  query  string  true   "Nombre del técnico"
// @Param        limit       query  int     false  "Máximo de filas (default 20)"
// @Param        offset      query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.ActivityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) ListByTechnician(c *fiber.Ctx) error {
	technician := c.Query("technician")
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page.DefaultPage()
	activities, err := h.record.ListByTechnician(c.Context(), technician, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.NewActivityResponse(a))
	}
	return c.JSON(fiber.Map{"total": len(out), "activities": out})
}
