package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypePurchase = "PURCHASE"
	MovementTypeTransfer = "TRANSFER"
	MovementTypeSale     = "SALE"
)

// StockMovement es una fila del libro de movimientos: cada compra, traslado o
// venta deja registros firmados por ubicación (positivo entra, negativo sale).
// TransactionID agrupa las filas de una misma operación (ej. las dos patas de un
// traslado o todas las líneas de una factura).
type StockMovement struct {
	ID            string
	TransactionID string
	ProductID     string
	Location      Location
	Type          string
	Quantity      int             // firmado
	UnitCost      decimal.Decimal // costo unitario aplicado al movimiento
	TotalCost     decimal.Decimal
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
