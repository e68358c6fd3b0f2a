package entity

import "time"

// Tipos de alerta generados por el monitor de stock.
const (
	AlertTypeLowStock       = "low_stock"
	AlertTypeLowMovingStock = "low_moving_stock"
)

// Prioridades de alerta.
const (
	AlertPriorityHigh   = "high"
	AlertPriorityMedium = "medium"
	AlertPriorityLow    = "low"
)

// Alert es una alerta derivada por el monitor de stock. Ciclo de vida:
// creada (IsRead=false) → reconocida (IsRead=true). ResolvedAt se estampa cuando
// un escaneo posterior detecta que la condición ya no se cumple; mientras exista
// una alerta sin resolver para el mismo producto y tipo no se genera otra.
type Alert struct {
	ID         string
	Type       string
	ProductID  string
	Priority   string
	IsRead     bool
	ResolvedAt *time.Time
	CreatedAt  time.Time
}
