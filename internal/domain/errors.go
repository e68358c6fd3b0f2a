package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidLocation   = errors.New("ubicación inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ShortageItem detalle de un ítem que no pudo cubrirse con el stock disponible.
type ShortageItem struct {
	ProductID string
	SKU       string
	Location  string // warehouse | store
	Requested int
	Available int
}

// StockShortageError reporta todos los ítems de una operación que exceden el stock
// disponible. Satisface errors.Is(err, ErrInsufficientStock) para el mapeo HTTP.
type StockShortageError struct {
	Items []ShortageItem
}

func (e *StockShortageError) Error() string {
	if len(e.Items) == 0 {
		return ErrInsufficientStock.Error()
	}
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("producto %s (%s): solicitado %d, disponible %d en %s",
			it.SKU, it.ProductID, it.Requested, it.Available, it.Location))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

// Is permite comparar contra el centinela ErrInsufficientStock.
func (e *StockShortageError) Is(target error) bool {
	return target == ErrInsufficientStock
}
