package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// RecordPurchaseRequest body para POST /api/inventory/purchases.
// UnitCost admite cero (mercancía sin costo, ej. garantías).
type RecordPurchaseRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Location  string          `json:"location" validate:"required,oneof=warehouse store"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// ProductStockResponse vista del producto tras una mutación de inventario.
// Los costos se redondean a 2 decimales solo aquí, en presentación.
type ProductStockResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	WarehouseStock int             `json:"warehouse_stock"`
	StoreStock     int             `json:"store_stock"`
	TotalStock     int             `json:"total_stock"`
	MinStockLevel  int             `json:"min_stock_level"`
	Cost           decimal.Decimal `json:"cost"`
	AverageCost    decimal.Decimal `json:"average_cost"`
	TotalSold      int             `json:"total_sold"`
	LastSaleDate   *time.Time      `json:"last_sale_date,omitempty"`
}

// NewProductStockResponse construye la vista desde la entidad.
func NewProductStockResponse(p *entity.Product) ProductStockResponse {
	return ProductStockResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		WarehouseStock: p.WarehouseStock,
		StoreStock:     p.StoreStock,
		TotalStock:     p.TotalStock(),
		MinStockLevel:  p.MinStockLevel,
		Cost:           p.Cost.Round(2),
		AverageCost:    p.AverageCost.Round(2),
		TotalSold:      p.TotalSold,
		LastSaleDate:   p.LastSaleDate,
	}
}

// StockMovementResponse fila del libro de movimientos para la API.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     string          `json:"product_id"`
	Location      string          `json:"location"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Date          time.Time       `json:"date"`
}

// NewStockMovementResponse construye la vista desde la entidad.
func NewStockMovementResponse(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		ProductID:     m.ProductID,
		Location:      string(m.Location),
		Type:          m.Type,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost.Round(2),
		TotalCost:     m.TotalCost.Round(2),
		Date:          m.Date,
	}
}

// ValuationRowResponse fila del reporte de valoración.
type ValuationRowResponse struct {
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Units       int             `json:"units"`
	AverageCost decimal.Decimal `json:"average_cost"`
	TotalValue  decimal.Decimal `json:"total_value"`
}

// ValuationResponse reporte de valoración del inventario al costo promedio.
type ValuationResponse struct {
	Rows       []ValuationRowResponse `json:"rows"`
	TotalUnits int                    `json:"total_units"`
	TotalValue decimal.Decimal        `json:"total_value"`
}

// NewValuationRowResponse construye la fila desde el resultado del repositorio.
func NewValuationRowResponse(r repository.ValuationRow) ValuationRowResponse {
	return ValuationRowResponse{
		ProductID:   r.ProductID,
		SKU:         r.SKU,
		Name:        r.Name,
		Units:       r.Units,
		AverageCost: r.AverageCost.Round(2),
		TotalValue:  r.TotalValue.Round(2),
	}
}
