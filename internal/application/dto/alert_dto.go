package dto

import (
	"time"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// AlertResponse vista de una alerta del monitor de stock.
type AlertResponse struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	ProductID  string     `json:"product_id"`
	Priority   string     `json:"priority"`
	IsRead     bool       `json:"is_read"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewAlertResponse construye la vista desde la entidad.
func NewAlertResponse(a *entity.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		Type:       a.Type,
		ProductID:  a.ProductID,
		Priority:   a.Priority,
		IsRead:     a.IsRead,
		ResolvedAt: a.ResolvedAt,
		CreatedAt:  a.CreatedAt,
	}
}

// ScanAlertsResponse resultado de un escaneo del monitor.
type ScanAlertsResponse struct {
	Created  int `json:"created"`
	Resolved int `json:"resolved"`
}
