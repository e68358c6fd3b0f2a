package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

const activityColumns = `id, technician_name, activity_type, product_id, product_name,
	quantity, transfer_id, notes, work_date, created_at`

// ActivityRepo implementación sobre PostgreSQL (usable con pool o tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create persiste una actividad de técnico (apéndice puro).
func (r *ActivityRepo) Create(activity *entity.TechnicianActivity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	query := `
		INSERT INTO technician_activities (id, technician_name, activity_type, product_id, product_name, quantity, transfer_id, notes, work_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.TechnicianName, activity.ActivityType, activity.ProductID,
		activity.ProductName, activity.Quantity, activity.TransferID, activity.Notes,
		activity.WorkDate, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert technician activity: %w", err)
	}
	return nil
}

// List lista la bitácora completa, la más reciente primero.
func (r *ActivityRepo) List(limit, offset int) ([]*entity.TechnicianActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM technician_activities ORDER BY work_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

// ListByTechnician lista la bitácora de un técnico.
func (r *ActivityRepo) ListByTechnician(technicianName string, limit, offset int) ([]*entity.TechnicianActivity, error) {
	query := `SELECT ` + activityColumns + ` FROM technician_activities WHERE technician_name = $1 ORDER BY work_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, technicianName, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities by technician: %w", err)
	}
	defer rows.Close()
	return collectActivities(rows)
}

func collectActivities(rows pgx.Rows) ([]*entity.TechnicianActivity, error) {
	var list []*entity.TechnicianActivity
	for rows.Next() {
		var a entity.TechnicianActivity
		if err := rows.Scan(&a.ID, &a.TechnicianName, &a.ActivityType, &a.ProductID,
			&a.ProductName, &a.Quantity, &a.TransferID, &a.Notes, &a.WorkDate, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
