package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

func newMonitorFixture() (*fakeStore, *fakeAlertRepo, *StockMonitorUseCase) {
	store := newFakeStore()
	alertRepo := &fakeAlertRepo{}
	uc := NewStockMonitorUseCase(&fakeProductRepo{store: store}, alertRepo)
	return store, alertRepo, uc
}

func daysAgo(n int) *time.Time {
	t := time.Now().AddDate(0, 0, -n)
	return &t
}

func TestLowStock_SoloBajoElMinimo(t *testing.T) {
	store, _, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 2, MinStockLevel: 5})
	store.addProduct(&entity.Product{ID: "p2", SKU: "B", Name: "B", WarehouseStock: 5, MinStockLevel: 5}) // en el mínimo, no bajo
	store.addProduct(&entity.Product{ID: "p3", SKU: "C", Name: "C", WarehouseStock: 0, MinStockLevel: 0}) // sin mínimo configurado

	low, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "p1", low[0].ID)
}

// El umbral compara el stock total: bodega + punto de venta.
func TestLowStock_SumaAmbasUbicaciones(t *testing.T) {
	store, _, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 3, StoreStock: 3, MinStockLevel: 5})

	low, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, low, "6 unidades totales no están bajo el mínimo de 5")
}

func TestLowMovingStock(t *testing.T) {
	store, _, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 5, LastSaleDate: daysAgo(45)})
	store.addProduct(&entity.Product{ID: "p2", SKU: "B", Name: "B", WarehouseStock: 5, LastSaleDate: daysAgo(3)})
	store.addProduct(&entity.Product{ID: "p3", SKU: "C", Name: "C", WarehouseStock: 5}) // nunca vendido
	store.addProduct(&entity.Product{ID: "p4", SKU: "D", Name: "D", WarehouseStock: 0, LastSaleDate: daysAgo(90)}) // sin stock: no aplica

	slow, err := uc.LowMovingStock(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, slow, 2)
	// Nunca vendidos primero, luego la venta más antigua.
	assert.Equal(t, "p3", slow[0].ID)
	assert.Equal(t, "p1", slow[1].ID)
}

func TestLowMovingStock_VentanaInvalida(t *testing.T) {
	_, _, uc := newMonitorFixture()
	_, err := uc.LowMovingStock(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScanAlerts_CreaConPrioridad(t *testing.T) {
	store, alertRepo, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 0, MinStockLevel: 5})               // agotado: alta
	store.addProduct(&entity.Product{ID: "p2", SKU: "B", Name: "B", WarehouseStock: 2, MinStockLevel: 5})               // bajo: media
	store.addProduct(&entity.Product{ID: "p3", SKU: "C", Name: "C", WarehouseStock: 5, LastSaleDate: daysAgo(60)}) // baja rotación

	result, err := uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Resolved)

	byProduct := make(map[string]*entity.Alert)
	for _, a := range alertRepo.alerts {
		byProduct[a.ProductID+"/"+a.Type] = a
	}
	assert.Equal(t, entity.AlertPriorityHigh, byProduct["p1/"+entity.AlertTypeLowStock].Priority)
	assert.Equal(t, entity.AlertPriorityMedium, byProduct["p2/"+entity.AlertTypeLowStock].Priority)
	assert.Equal(t, entity.AlertPriorityLow, byProduct["p3/"+entity.AlertTypeLowMovingStock].Priority)
}

// Re-escanear sin cambios de estado no duplica alertas, incluso si ya fueron
// reconocidas.
func TestScanAlerts_ReescaneoNoDuplica(t *testing.T) {
	store, alertRepo, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 1, MinStockLevel: 5})

	first, err := uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	// Reconocer la alerta no habilita su regeneración.
	_, err = uc.Acknowledge(context.Background(), alertRepo.alerts[0].ID)
	require.NoError(t, err)

	second, err := uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, alertRepo.alerts, 1)
}

// Cuando la condición se limpia, la alerta abierta se resuelve; si vuelve a
// ocurrir, se crea una nueva.
func TestScanAlerts_ResuelveYRegeneraTrasLimpiarse(t *testing.T) {
	store, alertRepo, uc := newMonitorFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "A", Name: "A", WarehouseStock: 1, MinStockLevel: 5})

	_, err := uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, alertRepo.alerts, 1)

	// Reposición: la condición se limpia.
	store.products["p1"].WarehouseStock = 10
	result, err := uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)
	assert.NotNil(t, alertRepo.alerts[0].ResolvedAt)

	// Vuelve a caer: nueva alerta, la resuelta queda como historial.
	store.products["p1"].WarehouseStock = 0
	result, err = uc.ScanAlerts(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, alertRepo.alerts, 2)
	assert.Nil(t, alertRepo.alerts[1].ResolvedAt)
	assert.Equal(t, entity.AlertPriorityHigh, alertRepo.alerts[1].Priority)
}

func TestAcknowledge_Idempotente(t *testing.T) {
	_, alertRepo, uc := newMonitorFixture()
	alertRepo.alerts = append(alertRepo.alerts, &entity.Alert{
		ID: "a1", Type: entity.AlertTypeLowStock, ProductID: "p1", Priority: entity.AlertPriorityMedium,
	})

	first, err := uc.Acknowledge(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, first.IsRead)

	second, err := uc.Acknowledge(context.Background(), "a1")
	require.NoError(t, err)
	assert.True(t, second.IsRead)
}

func TestAcknowledge_NoEncontrada(t *testing.T) {
	_, _, uc := newMonitorFixture()
	_, err := uc.Acknowledge(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
