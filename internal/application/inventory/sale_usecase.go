package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// FulfillInvoiceUseCase descuenta del punto de venta todas las líneas de una
// factura con semántica todo-o-nada: dentro de una sola transacción bloquea las
// filas de producto en orden determinista (evita deadlocks entre facturas
// concurrentes), valida TODAS las líneas contra el stock del punto de venta y
// solo entonces aplica. Cualquier faltante rechaza el lote completo e identifica
// cada ítem ofensor.
type FulfillInvoiceUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewFulfillInvoiceUseCase construye el caso de uso.
func NewFulfillInvoiceUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *FulfillInvoiceUseCase {
	return &FulfillInvoiceUseCase{txRunner: txRunner, productRepo: productRepo}
}

// InvoiceItemInput línea de factura a descontar.
type InvoiceItemInput struct {
	ProductID string
	Quantity  int
}

// FulfillInvoice aplica el lote y devuelve los productos actualizados (uno por
// producto distinto, en orden de primera aparición en la factura).
func (uc *FulfillInvoiceUseCase) FulfillInvoice(ctx context.Context, items []InvoiceItemInput, createdBy string) ([]*entity.Product, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Una factura puede repetir producto en varias líneas: se agregan cantidades
	// por producto antes de validar contra el stock.
	qtyByProduct := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if _, seen := qtyByProduct[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		qtyByProduct[item.ProductID] += item.Quantity
	}
	// Orden determinista de bloqueo entre transacciones concurrentes.
	lockOrder := make([]string, len(order))
	copy(lockOrder, order)
	sort.Strings(lockOrder)

	now := time.Now()
	invoiceTxID := uuid.New().String()
	updatedByID := make(map[string]*entity.Product, len(order))

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		_ repository.TransferRepository,
	) error {
		// Fase 1: bloquear y validar todo antes de escribir nada.
		locked := make(map[string]*entity.Product, len(lockOrder))
		var shortages []domain.ShortageItem
		for _, productID := range lockOrder {
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			locked[productID] = product
			requested := qtyByProduct[productID]
			if product.StoreStock < requested {
				shortages = append(shortages, domain.ShortageItem{
					ProductID: product.ID,
					SKU:       product.SKU,
					Location:  string(entity.LocationStore),
					Requested: requested,
					Available: product.StoreStock,
				})
			}
		}
		if len(shortages) > 0 {
			return &domain.StockShortageError{Items: shortages}
		}

		// Fase 2: aplicar todas las líneas.
		for _, productID := range lockOrder {
			product := locked[productID]
			qty := qtyByProduct[productID]
			product.StoreStock -= qty
			product.TotalSold += qty
			saleDate := now
			product.LastSaleDate = &saleDate
			product.UpdatedAt = now
			if err := productRepo.UpdateStock(product); err != nil {
				return err
			}
			unitCost := product.AverageCost
			mov := &entity.StockMovement{
				TransactionID: invoiceTxID,
				ProductID:     product.ID,
				Location:      entity.LocationStore,
				Type:          entity.MovementTypeSale,
				Quantity:      -qty,
				UnitCost:      unitCost,
				TotalCost:     unitCost.Mul(decimal.NewFromInt(int64(-qty))),
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     createdBy,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			updatedByID[productID] = product
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated := make([]*entity.Product, 0, len(order))
	for _, productID := range order {
		updated = append(updated, updatedByID[productID])
	}
	return updated, nil
}
