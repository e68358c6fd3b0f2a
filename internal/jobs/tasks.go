package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault cola por defecto para los trabajos en background.
	QueueDefault = "default"
	// TaskTypeAlertScan tipo de tarea para el escaneo periódico de alertas de stock.
	TaskTypeAlertScan = "alerts:scan"
)

// AlertScanPayload parámetros del escaneo de alertas.
type AlertScanPayload struct {
	WindowDays int `json:"window_days"` // ventana de baja rotación; <=0 usa el default
}

// NewAlertScanTask construye la tarea Asynq del escaneo.
func NewAlertScanTask(payload AlertScanPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeAlertScan, data), nil
}
