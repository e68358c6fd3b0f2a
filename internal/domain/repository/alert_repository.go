package repository

import (
	"context"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia para alertas derivadas.
type AlertRepository interface {
	// CreateIfAbsent inserta la alerta solo si no existe otra sin resolver para el
	// mismo producto y tipo. Devuelve true si la insertó.
	CreateIfAbsent(alert *entity.Alert) (bool, error)
	GetByID(id string) (*entity.Alert, error)
	// MarkRead marca la alerta como leída (reconocimiento).
	MarkRead(id string) error
	List(onlyUnread bool, limit, offset int) ([]*entity.Alert, error)
	// ResolveExcept estampa resolved_at en las alertas sin resolver del tipo dado
	// cuyo producto NO está en keepProductIDs (la condición se limpió). Devuelve
	// cuántas resolvió.
	ResolveExcept(ctx context.Context, alertType string, keepProductIDs []string) (int, error)
}
