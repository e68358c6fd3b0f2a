package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// CreateProductRequest alta mínima de catálogo (el CRM completo vive fuera de este
// núcleo; aquí solo lo necesario para poder operar inventario sobre el producto).
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,max=64"`
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int             `json:"min_stock_level" validate:"omitempty,min=0"`
}

// UpdateProductRequest actualización de campos de catálogo. Stock y costos no se
// tocan por aquí: solo los casos de uso de inventario los mutan.
type UpdateProductRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int             `json:"min_stock_level" validate:"omitempty,min=0"`
}

// ProductResponse vista completa de catálogo + stock.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	AverageCost    decimal.Decimal `json:"average_cost"`
	WarehouseStock int             `json:"warehouse_stock"`
	StoreStock     int             `json:"store_stock"`
	MinStockLevel  int             `json:"min_stock_level"`
	TotalSold      int             `json:"total_sold"`
	LastSaleDate   *time.Time      `json:"last_sale_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewProductResponse construye la vista desde la entidad.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price.Round(2),
		Cost:           p.Cost.Round(2),
		AverageCost:    p.AverageCost.Round(2),
		WarehouseStock: p.WarehouseStock,
		StoreStock:     p.StoreStock,
		MinStockLevel:  p.MinStockLevel,
		TotalSold:      p.TotalSold,
		LastSaleDate:   p.LastSaleDate,
		CreatedAt:      p.CreatedAt,
	}
}
