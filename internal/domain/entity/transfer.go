package entity

import "time"

// Estado de un traslado. Este núcleo no maneja flujo de aprobación: todo traslado
// se crea ya completado y es inmutable.
const TransferStatusCompleted = "completed"

// Tipos de actividad de técnico asociables a un traslado.
const (
	ActivityTypeCheck        = "check"
	ActivityTypeRepair       = "repair"
	ActivityTypeMaintenance  = "maintenance"
	ActivityTypeInstallation = "installation"
)

// ValidActivityType indica si el tipo de actividad es uno de los conocidos.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityTypeCheck, ActivityTypeRepair, ActivityTypeMaintenance, ActivityTypeInstallation:
		return true
	}
	return false
}

// Transfer representa la reubicación de unidades de un producto entre bodega y
// punto de venta. No cambia el stock total ni la valoración del producto.
type Transfer struct {
	ID             string
	ProductID      string
	FromLocation   Location
	ToLocation     Location
	Quantity       int
	TechnicianName string // opcional; dispara el registro de actividad
	ActivityType   string // opcional; check | repair | maintenance | installation
	Notes          string
	Status         string
	CreatedBy      string
	CreatedAt      time.Time
}
