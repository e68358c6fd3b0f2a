package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación sobre PostgreSQL (usable con pool o tx).
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// CreateIfAbsent inserta la alerta solo si no existe otra sin resolver para el
// mismo producto y tipo. Se apoya en el índice parcial único
// alerts_open_product_type_key (WHERE resolved_at IS NULL).
func (r *AlertRepo) CreateIfAbsent(alert *entity.Alert) (bool, error) {
	query := `
		INSERT INTO alerts (id, type, product_id, priority, is_read, resolved_at, created_at)
		VALUES ($1, $2, $3, $4, false, NULL, $5)
		ON CONFLICT (product_id, type) WHERE resolved_at IS NULL DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Type, alert.ProductID, alert.Priority, alert.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert alert: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetByID obtiene una alerta por ID.
func (r *AlertRepo) GetByID(id string) (*entity.Alert, error) {
	query := `SELECT id, type, product_id, priority, is_read, resolved_at, created_at FROM alerts WHERE id = $1`
	var a entity.Alert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Type, &a.ProductID, &a.Priority, &a.IsRead, &a.ResolvedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// MarkRead marca la alerta como leída. Es la única mutación permitida sobre una
// alerta fuera del escaneo.
func (r *AlertRepo) MarkRead(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE alerts SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	return nil
}

// List lista alertas, la más reciente primero.
func (r *AlertRepo) List(onlyUnread bool, limit, offset int) ([]*entity.Alert, error) {
	query := `SELECT id, type, product_id, priority, is_read, resolved_at, created_at FROM alerts`
	if onlyUnread {
		query += ` WHERE is_read = false AND resolved_at IS NULL`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alert
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.ProductID, &a.Priority, &a.IsRead, &a.ResolvedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ResolveExcept estampa resolved_at en las alertas abiertas del tipo dado cuyo
// producto ya no cumple la condición (no está en keepProductIDs).
func (r *AlertRepo) ResolveExcept(ctx context.Context, alertType string, keepProductIDs []string) (int, error) {
	if keepProductIDs == nil {
		// nil se codifica como NULL y ANY(NULL) no coincide con ninguna fila.
		keepProductIDs = []string{}
	}
	query := `
		UPDATE alerts SET resolved_at = now()
		WHERE type = $1 AND resolved_at IS NULL AND NOT (product_id = ANY($2))`
	cmd, err := r.q.Exec(ctx, query, alertType, keepProductIDs)
	if err != nil {
		return 0, fmt.Errorf("resolve alerts: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
