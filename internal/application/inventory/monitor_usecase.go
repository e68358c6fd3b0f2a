package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// DefaultLowMovingWindowDays ventana por defecto para stock de baja rotación.
const DefaultLowMovingWindowDays = 30

// StockMonitorUseCase consultas derivadas sobre el stock (bajo mínimo, baja
// rotación) y generación/reconocimiento de alertas. Observador aguas abajo: nunca
// participa en la ruta de escritura del inventario.
type StockMonitorUseCase struct {
	productRepo repository.ProductRepository
	alertRepo   repository.AlertRepository
}

// NewStockMonitorUseCase construye el caso de uso.
func NewStockMonitorUseCase(productRepo repository.ProductRepository, alertRepo repository.AlertRepository) *StockMonitorUseCase {
	return &StockMonitorUseCase{productRepo: productRepo, alertRepo: alertRepo}
}

// LowStock devuelve los productos con stock total bajo su mínimo, ordenados por
// stock restante ascendente y luego por nombre.
func (uc *StockMonitorUseCase) LowStock(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListLowStock(ctx)
}

// LowMovingStock devuelve los productos con stock en mano sin ventas dentro de la
// ventana (o sin ventas registradas). windowDays <= 0 es entrada inválida; el
// valor ausente lo resuelve el caller con DefaultLowMovingWindowDays.
func (uc *StockMonitorUseCase) LowMovingStock(ctx context.Context, windowDays int) ([]*entity.Product, error) {
	if windowDays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	return uc.productRepo.ListLowMoving(ctx, cutoff)
}

// ScanResult resumen de un escaneo de alertas.
type ScanResult struct {
	Created  int
	Resolved int
}

// ScanAlerts ejecuta un escaneo: primero resuelve las alertas cuya condición se
// limpió (estampa resolved_at), luego crea a lo sumo una alerta sin resolver por
// producto y tipo. Re-escanear sin cambios de estado no duplica alertas; una
// alerta reconocida pero sin resolver también bloquea la regeneración hasta que
// la condición se limpie y vuelva a ocurrir.
func (uc *StockMonitorUseCase) ScanAlerts(ctx context.Context, windowDays int) (*ScanResult, error) {
	if windowDays <= 0 {
		windowDays = DefaultLowMovingWindowDays
	}
	result := &ScanResult{}

	lowStock, err := uc.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.scanType(ctx, entity.AlertTypeLowStock, lowStock, lowStockPriority, result); err != nil {
		return nil, err
	}

	lowMoving, err := uc.LowMovingStock(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	if err := uc.scanType(ctx, entity.AlertTypeLowMovingStock, lowMoving, func(*entity.Product) string {
		return entity.AlertPriorityLow
	}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *StockMonitorUseCase) scanType(ctx context.Context, alertType string, products []*entity.Product, priority func(*entity.Product) string, result *ScanResult) error {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	resolved, err := uc.alertRepo.ResolveExcept(ctx, alertType, ids)
	if err != nil {
		return err
	}
	result.Resolved += resolved

	now := time.Now()
	for _, p := range products {
		created, err := uc.alertRepo.CreateIfAbsent(&entity.Alert{
			ID:        uuid.New().String(),
			Type:      alertType,
			ProductID: p.ID,
			Priority:  priority(p),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		if created {
			result.Created++
		}
	}
	return nil
}

// lowStockPriority: sin unidades = alta, bajo el mínimo = media.
func lowStockPriority(p *entity.Product) string {
	if p.TotalStock() == 0 {
		return entity.AlertPriorityHigh
	}
	return entity.AlertPriorityMedium
}

// Acknowledge marca una alerta como leída. Idempotente: reconocer una alerta ya
// leída devuelve la alerta sin cambios y sin error.
func (uc *StockMonitorUseCase) Acknowledge(ctx context.Context, alertID string) (*entity.Alert, error) {
	alert, err := uc.alertRepo.GetByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.IsRead {
		return alert, nil
	}
	if err := uc.alertRepo.MarkRead(alertID); err != nil {
		return nil, err
	}
	alert.IsRead = true
	return alert, nil
}

// ListAlerts lista alertas, opcionalmente solo las no leídas.
func (uc *StockMonitorUseCase) ListAlerts(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.Alert, error) {
	return uc.alertRepo.List(onlyUnread, limit, offset)
}
