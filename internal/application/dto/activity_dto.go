package dto

import (
	"time"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// RecordActivityRequest body para POST /api/activities (registro manual, sin traslado).
type RecordActivityRequest struct {
	TechnicianName string     `json:"technician_name" validate:"required,max=120"`
	ActivityType   string     `json:"activity_type" validate:"required,oneof=check repair maintenance installation"`
	ProductID      string     `json:"product_id" validate:"required,uuid4"`
	ProductName    string     `json:"product_name" validate:"required,max=200"`
	Quantity       int        `json:"quantity" validate:"required,gt=0"`
	Notes          string     `json:"notes,omitempty" validate:"omitempty,max=500"`
	WorkDate       *time.Time `json:"work_date,omitempty"`
}

// ActivityResponse entrada de la bitácora de técnicos.
type ActivityResponse struct {
	ID             string    `json:"id"`
	TechnicianName string    `json:"technician_name"`
	ActivityType   string    `json:"activity_type"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int       `json:"quantity"`
	TransferID     *string   `json:"transfer_id,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	WorkDate       time.Time `json:"work_date"`
}

// NewActivityResponse construye la vista desde la entidad.
func NewActivityResponse(a *entity.TechnicianActivity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		TechnicianName: a.TechnicianName,
		ActivityType:   a.ActivityType,
		ProductID:      a.ProductID,
		ProductName:    a.ProductName,
		Quantity:       a.Quantity,
		TransferID:     a.TransferID,
		Notes:          a.Notes,
		WorkDate:       a.WorkDate,
	}
}
