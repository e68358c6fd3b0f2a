package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// CreateTransferUseCase aplica un traslado bodega↔punto de venta: valida
// disponibilidad en origen con bloqueo de fila, mueve los contadores sin tocar la
// valoración y persiste el traslado (siempre "completed") con sus dos asientos en
// el libro de movimientos. Si el traslado nombra un técnico, registra la actividad
// DESPUÉS del commit como paso best-effort: su falla se reporta como advertencia,
// nunca revierte el traslado.
type CreateTransferUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	recorder    ActivityRecorder
}

// NewCreateTransferUseCase construye el caso de uso.
func NewCreateTransferUseCase(txRunner TxRunner, productRepo repository.ProductRepository, recorder ActivityRecorder) *CreateTransferUseCase {
	return &CreateTransferUseCase{txRunner: txRunner, productRepo: productRepo, recorder: recorder}
}

// TransferInput entrada para crear un traslado.
type TransferInput struct {
	ProductID      string
	FromLocation   entity.Location
	ToLocation     entity.Location
	Quantity       int
	TechnicianName string
	ActivityType   string
	Notes          string
	CreatedBy      string
}

// TransferResult traslado aplicado + producto actualizado. ActivityErr queda
// poblado si el registro de actividad falló tras un traslado exitoso.
type TransferResult struct {
	Transfer    *entity.Transfer
	Product     *entity.Product
	ActivityID  string
	ActivityErr error
}

// CreateTransfer valida, aplica y registra el traslado.
func (uc *CreateTransferUseCase) CreateTransfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !input.FromLocation.Valid() || !input.ToLocation.Valid() || input.FromLocation == input.ToLocation {
		return nil, domain.ErrInvalidLocation
	}
	if input.TechnicianName != "" && !entity.ValidActivityType(input.ActivityType) {
		return nil, domain.ErrInvalidInput
	}
	if product, err := uc.productRepo.GetByID(input.ProductID); err != nil {
		return nil, err
	} else if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.Transfer{
		ID:             uuid.New().String(),
		ProductID:      input.ProductID,
		FromLocation:   input.FromLocation,
		ToLocation:     input.ToLocation,
		Quantity:       input.Quantity,
		TechnicianName: input.TechnicianName,
		ActivityType:   input.ActivityType,
		Notes:          input.Notes,
		Status:         entity.TransferStatusCompleted,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
	}
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		transferRepo repository.TransferRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		available := product.StockAt(input.FromLocation)
		if available < input.Quantity {
			return &domain.StockShortageError{Items: []domain.ShortageItem{{
				ProductID: product.ID,
				SKU:       product.SKU,
				Location:  string(input.FromLocation),
				Requested: input.Quantity,
				Available: available,
			}}}
		}

		// Reubicación: la cantidad total y los costos no cambian.
		product.AddStock(input.FromLocation, -input.Quantity)
		product.AddStock(input.ToLocation, input.Quantity)
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}

		unitCost := product.AverageCost
		qty := int64(input.Quantity)
		outMov := &entity.StockMovement{
			TransactionID: transfer.ID,
			ProductID:     product.ID,
			Location:      input.FromLocation,
			Type:          entity.MovementTypeTransfer,
			Quantity:      -input.Quantity,
			UnitCost:      unitCost,
			TotalCost:     unitCost.Mul(decimal.NewFromInt(-qty)),
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     input.CreatedBy,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}
		inMov := &entity.StockMovement{
			TransactionID: transfer.ID,
			ProductID:     product.ID,
			Location:      input.ToLocation,
			Type:          entity.MovementTypeTransfer,
			Quantity:      input.Quantity,
			UnitCost:      unitCost,
			TotalCost:     unitCost.Mul(decimal.NewFromInt(qty)),
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     input.CreatedBy,
		}
		if err := movRepo.Create(inMov); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &TransferResult{Transfer: transfer, Product: updated}

	// Efecto best-effort fuera de la tx y del bloqueo de fila: el traslado ya
	// quedó confirmado; una falla aquí se reporta como advertencia al caller.
	if input.TechnicianName != "" {
		activity, actErr := uc.recorder.Record(ctx, RecordActivityInput{
			TechnicianName: input.TechnicianName,
			ActivityType:   input.ActivityType,
			ProductID:      updated.ID,
			ProductName:    updated.Name,
			Quantity:       input.Quantity,
			TransferID:     transfer.ID,
			Notes:          input.Notes,
			WorkDate:       now,
		})
		if actErr != nil {
			log.Warn().Err(actErr).
				Str("transfer_id", transfer.ID).
				Str("technician", input.TechnicianName).
				Msg("traslado confirmado pero falló el registro de actividad")
			result.ActivityErr = actErr
		} else {
			result.ActivityID = activity.ID
		}
	}
	return result, nil
}
