package repository

import "github.com/tu-usuario/servitec-crm/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados.
// Los traslados son inmutables: solo inserción y lectura.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	List(limit, offset int) ([]*entity.Transfer, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Transfer, error)
}
