package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// ValuationRow fila del reporte de valoración: unidades en mano y valor al costo
// promedio ponderado.
type ValuationRow struct {
	ProductID   string
	SKU         string
	Name        string
	Units       int
	AverageCost decimal.Decimal
	TotalValue  decimal.Decimal
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los contadores de stock y los campos de costo se persisten solo vía UpdateStock,
// dentro de la transacción que tomó el bloqueo con GetForUpdate.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)

	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock persiste stock por ubicación, costos y contadores de venta.
	UpdateStock(product *entity.Product) error

	// ListLowStock devuelve productos con stock total bajo su mínimo configurado,
	// ordenados por stock restante ascendente y luego por nombre.
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	// ListLowMoving devuelve productos con stock en mano y sin ventas desde cutoff
	// (o sin ventas registradas), ordenados por última venta más antigua primero.
	ListLowMoving(ctx context.Context, cutoff time.Time) ([]*entity.Product, error)
	// Valuation devuelve unidades y valor al costo promedio por producto con stock.
	Valuation(ctx context.Context) ([]ValuationRow, error)
}
