package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	domaininv "github.com/tu-usuario/servitec-crm/internal/domain/inventory"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// RecordPurchaseUseCase registra una compra: suma stock en la ubicación indicada y
// recalcula el costo promedio ponderado del producto, todo en una transacción con
// bloqueo de fila (SELECT FOR UPDATE) y registro en el libro de movimientos.
type RecordPurchaseUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecordPurchaseUseCase construye el caso de uso.
func NewRecordPurchaseUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordPurchaseUseCase {
	return &RecordPurchaseUseCase{txRunner: txRunner, productRepo: productRepo}
}

// PurchaseInput entrada para registrar una compra.
type PurchaseInput struct {
	ProductID string
	Location  entity.Location
	Quantity  int
	UnitCost  decimal.Decimal
	CreatedBy string
}

// RecordPurchase aplica la compra y devuelve el producto actualizado.
// Precondiciones: producto existente, cantidad > 0, costo >= 0, ubicación válida.
func (uc *RecordPurchaseUseCase) RecordPurchase(ctx context.Context, input PurchaseInput) (*entity.Product, error) {
	if input.Quantity <= 0 || input.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Location.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	// Existencia fuera de la tx (solo lectura); el estado autoritativo se relee
	// con bloqueo dentro de la tx.
	if product, err := uc.productRepo.GetByID(input.ProductID); err != nil {
		return nil, err
	} else if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	txID := uuid.New().String()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		_ repository.TransferRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		currentStock := decimal.NewFromInt(int64(product.TotalStock()))
		currentCost := domaininv.ResolveCurrentCost(product.AverageCost, product.Cost, input.UnitCost)
		qty := decimal.NewFromInt(int64(input.Quantity))
		newAverage := domaininv.CostCalculator(currentStock, currentCost, qty, input.UnitCost)

		product.AddStock(input.Location, input.Quantity)
		product.Cost = input.UnitCost
		product.AverageCost = newAverage
		product.UpdatedAt = now
		if err := productRepo.UpdateStock(product); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			TransactionID: txID,
			ProductID:     product.ID,
			Location:      input.Location,
			Type:          entity.MovementTypePurchase,
			Quantity:      input.Quantity,
			UnitCost:      input.UnitCost,
			TotalCost:     qty.Mul(input.UnitCost),
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     input.CreatedBy,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
