package repository

import "github.com/tu-usuario/servitec-crm/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el libro de
// movimientos de inventario (solo inserción y lectura).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
