package dto

import (
	"time"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// CreateTransferRequest body para POST /api/transfers.
// technician_name y activity_type van juntos: si se nombra un técnico se registra
// actividad con el tipo indicado.
type CreateTransferRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid4"`
	FromLocation   string `json:"from_location" validate:"required,oneof=warehouse store"`
	ToLocation     string `json:"to_location" validate:"required,oneof=warehouse store"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	TechnicianName string `json:"technician_name,omitempty" validate:"omitempty,max=120"`
	ActivityType   string `json:"activity_type,omitempty" validate:"omitempty,oneof=check repair maintenance installation"`
	Notes          string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// TransferResponse vista de un traslado.
type TransferResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	FromLocation   string    `json:"from_location"`
	ToLocation     string    `json:"to_location"`
	Quantity       int       `json:"quantity"`
	TechnicianName string    `json:"technician_name,omitempty"`
	ActivityType   string    `json:"activity_type,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewTransferResponse construye la vista desde la entidad.
func NewTransferResponse(t *entity.Transfer) TransferResponse {
	return TransferResponse{
		ID:             t.ID,
		ProductID:      t.ProductID,
		FromLocation:   string(t.FromLocation),
		ToLocation:     string(t.ToLocation),
		Quantity:       t.Quantity,
		TechnicianName: t.TechnicianName,
		ActivityType:   t.ActivityType,
		Notes:          t.Notes,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
	}
}

// CreateTransferResponse traslado aplicado + producto actualizado. Si el registro
// de actividad falló, ActivityWarning lo reporta sin afectar el traslado.
type CreateTransferResponse struct {
	Transfer        TransferResponse     `json:"transfer"`
	Product         ProductStockResponse `json:"product"`
	ActivityID      string               `json:"activity_id,omitempty"`
	ActivityWarning string               `json:"activity_warning,omitempty"`
}
