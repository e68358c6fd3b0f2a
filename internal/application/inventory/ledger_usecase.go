package inventory

import (
	"context"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// LedgerUseCase lecturas del libro de movimientos y de traslados (solo consulta).
type LedgerUseCase struct {
	movRepo      repository.StockMovementRepository
	transferRepo repository.TransferRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(movRepo repository.StockMovementRepository, transferRepo repository.TransferRepository) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo, transferRepo: transferRepo}
}

// ListMovements lista el libro de movimientos de un producto.
func (uc *LedgerUseCase) ListMovements(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movRepo.ListByProduct(productID, limit, offset)
}

// ListTransfers lista traslados, opcionalmente filtrados por producto.
func (uc *LedgerUseCase) ListTransfers(ctx context.Context, productID string, limit, offset int) ([]*entity.Transfer, error) {
	if productID == "" {
		return uc.transferRepo.List(limit, offset)
	}
	return uc.transferRepo.ListByProduct(productID, limit, offset)
}

// GetTransfer obtiene un traslado por ID.
func (uc *LedgerUseCase) GetTransfer(ctx context.Context, id string) (*entity.Transfer, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return transfer, nil
}
