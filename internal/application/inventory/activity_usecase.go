package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// ActivityRecorder registra entradas en la bitácora de técnicos. Interfaz para que
// el traslado pueda invocarlo como efecto best-effort sin acoplarse al concreto.
type ActivityRecorder interface {
	Record(ctx context.Context, input RecordActivityInput) (*entity.TechnicianActivity, error)
}

// RecordActivityInput entrada para una actividad de técnico.
type RecordActivityInput struct {
	TechnicianName string
	ActivityType   string
	ProductID      string
	ProductName    string
	Quantity       int
	TransferID     string // opcional: traslado que originó la actividad
	Notes          string
	WorkDate       time.Time // cero = ahora
}

// RecordActivityUseCase apéndice puro a la bitácora de actividades. Sin más
// validación que técnico no vacío y cantidad positiva.
type RecordActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

// NewRecordActivityUseCase construye el caso de uso.
func NewRecordActivityUseCase(activityRepo repository.ActivityRepository) *RecordActivityUseCase {
	return &RecordActivityUseCase{activityRepo: activityRepo}
}

var _ ActivityRecorder = (*RecordActivityUseCase)(nil)

// Record inserta la actividad y la devuelve.
func (uc *RecordActivityUseCase) Record(ctx context.Context, input RecordActivityInput) (*entity.TechnicianActivity, error) {
	if input.TechnicianName == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	workDate := input.WorkDate
	if workDate.IsZero() {
		workDate = time.Now()
	}
	var transferID *string
	if input.TransferID != "" {
		transferID = &input.TransferID
	}
	activity := &entity.TechnicianActivity{
		ID:             uuid.New().String(),
		TechnicianName: input.TechnicianName,
		ActivityType:   input.ActivityType,
		ProductID:      input.ProductID,
		ProductName:    input.ProductName,
		Quantity:       input.Quantity,
		TransferID:     transferID,
		Notes:          input.Notes,
		WorkDate:       workDate,
		CreatedAt:      time.Now(),
	}
	if err := uc.activityRepo.Create(activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListByTechnician lista la bitácora, opcionalmente filtrada por técnico.
func (uc *RecordActivityUseCase) ListByTechnician(ctx context.Context, technicianName string, limit, offset int) ([]*entity.TechnicianActivity, error) {
	if technicianName == "" {
		return uc.activityRepo.List(limit, offset)
	}
	return uc.activityRepo.ListByTechnician(technicianName, limit, offset)
}
