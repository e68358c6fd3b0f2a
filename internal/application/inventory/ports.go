package inventory

import (
	"context"

	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el motor de inventario y, junto con los
// bloqueos de fila (GetForUpdate), la serialización por producto de las mutaciones.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
