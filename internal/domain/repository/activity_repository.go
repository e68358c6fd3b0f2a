package repository

import "github.com/tu-usuario/servitec-crm/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para la bitácora de
// actividades de técnicos (solo inserción y lectura).
type ActivityRepository interface {
	Create(activity *entity.TechnicianActivity) error
	List(limit, offset int) ([]*entity.TechnicianActivity, error)
	ListByTechnician(technicianName string, limit, offset int) ([]*entity.TechnicianActivity, error)
}
