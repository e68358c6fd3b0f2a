package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location es uno de los dos depósitos de stock de un producto.
type Location string

const (
	LocationWarehouse Location = "warehouse" // bodega
	LocationStore     Location = "store"     // punto de venta
)

// Valid indica si la ubicación es una de las dos conocidas.
func (l Location) Valid() bool {
	return l == LocationWarehouse || l == LocationStore
}

// Product representa un producto o SKU del inventario con stock en dos ubicaciones.
// Cost es el costo de la última compra; AverageCost el promedio ponderado del stock
// en mano (cero = aún sin compras). Los contadores de stock se mutan únicamente a
// través de los casos de uso de inventario, nunca desde el CRUD del catálogo.
type Product struct {
	ID             string
	SKU            string // código único
	Name           string
	Description    string
	Price          decimal.Decimal // precio de venta
	Cost           decimal.Decimal // costo última compra
	AverageCost    decimal.Decimal // costo promedio ponderado (precisión completa, sin redondear)
	WarehouseStock int
	StoreStock     int
	MinStockLevel  int
	TotalSold      int
	LastSaleDate   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalStock devuelve el stock total entre bodega y punto de venta.
func (p *Product) TotalStock() int {
	return p.WarehouseStock + p.StoreStock
}

// StockAt devuelve el stock en la ubicación indicada.
func (p *Product) StockAt(loc Location) int {
	if loc == LocationStore {
		return p.StoreStock
	}
	return p.WarehouseStock
}

// AddStock suma (o resta, con qty negativo) unidades en la ubicación indicada.
func (p *Product) AddStock(loc Location, qty int) {
	if loc == LocationStore {
		p.StoreStock += qty
		return
	}
	p.WarehouseStock += qty
}
