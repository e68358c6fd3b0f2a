package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/servitec-crm/internal/application/dto"
	"github.com/tu-usuario/servitec-crm/internal/application/inventory"
)

// AlertHandler alertas del monitor de stock (protegido).
type AlertHandler struct {
	monitor *inventory.StockMonitorUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(monitor *inventory.StockMonitorUseCase) *AlertHandler {
	return &AlertHandler{monitor: monitor}
}

// List godoc
// @Summary      Listar alertas de stock
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo alertas sin leer"
// @Param        limit   query  int   false  "Máximo de filas (default 20)"
// @Param        offset  query  int   false  "Desplazamiento"
// @Success      200  {array}   dto.AlertResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	onlyUnread := c.QueryBool("unread", false)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page.DefaultPage()
	alerts, err := h.monitor.ListAlerts(c.Context(), onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.NewAlertResponse(a))
	}
	return c.JSON(fiber.Map{"total": len(out), "alerts": out})
}

// Scan godoc
// @Summary      Ejecutar escaneo de alertas bajo demanda
// @Description  Mismo escaneo que corre el worker periódico: resuelve alertas cuya
//               condición se limpió y crea las que falten, sin duplicar.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        window_days  query  int  false  "Ventana de baja rotación en días (default 30)"
// @Success      200  {object}  dto.ScanAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alerts/scan [post]
func (h *AlertHandler) Scan(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", inventory.DefaultLowMovingWindowDays)
	result, err := h.monitor.ScanAlerts(c.Context(), windowDays)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ScanAlertsResponse{Created: result.Created, Resolved: result.Resolved})
}

// Acknowledge godoc
// @Summary      Marcar una alerta como leída
// @Description  Idempotente: reconocer una alerta ya leída la devuelve sin cambios.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID de la alerta"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/ack [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	alert, err := h.monitor.Acknowledge(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewAlertResponse(alert))
}
