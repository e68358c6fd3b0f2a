package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/servitec-crm/internal/domain"
	"github.com/tu-usuario/servitec-crm/internal/domain/entity"
)

func newTransferFixture() (*fakeStore, *fakeActivityRepo, *CreateTransferUseCase) {
	store := newFakeStore()
	activityRepo := &fakeActivityRepo{}
	recorder := NewRecordActivityUseCase(activityRepo)
	uc := NewCreateTransferUseCase(&fakeTxRunner{store: store}, &fakeProductRepo{store: store}, recorder)
	return store, activityRepo, uc
}

// Escenario de referencia: 15 en bodega, traslado de 5 al punto de venta por el
// técnico Juan (check) → 10/5, traslado registrado y actividad en la bitácora.
func TestCreateTransfer_BodegaAPuntoDeVentaConTecnico(t *testing.T) {
	store, activityRepo, uc := newTransferFixture()
	store.addProduct(&entity.Product{
		ID:             "p1",
		SKU:            "FIL-001",
		Name:           "Filtro de aceite",
		WarehouseStock: 15,
		AverageCost:    d("6000"),
	})

	result, err := uc.CreateTransfer(context.Background(), TransferInput{
		ProductID:      "p1",
		FromLocation:   entity.LocationWarehouse,
		ToLocation:     entity.LocationStore,
		Quantity:       5,
		TechnicianName: "Juan",
		ActivityType:   entity.ActivityTypeCheck,
		CreatedBy:      "user-1",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.Product.WarehouseStock)
	assert.Equal(t, 5, result.Product.StoreStock)
	assert.Equal(t, 15, result.Product.TotalStock(), "la cantidad total se conserva")

	require.NotNil(t, result.Transfer)
	assert.Equal(t, entity.TransferStatusCompleted, result.Transfer.Status)
	assert.Equal(t, "Juan", result.Transfer.TechnicianName)

	// Actividad best-effort registrada y ligada al traslado.
	require.NoError(t, result.ActivityErr)
	require.Len(t, activityRepo.activities, 1)
	activity := activityRepo.activities[0]
	assert.Equal(t, "Juan", activity.TechnicianName)
	assert.Equal(t, entity.ActivityTypeCheck, activity.ActivityType)
	assert.Equal(t, "Filtro de aceite", activity.ProductName)
	require.NotNil(t, activity.TransferID)
	assert.Equal(t, result.Transfer.ID, *activity.TransferID)

	// El libro registra salida y entrada con el mismo transaction_id.
	require.Len(t, store.movements, 2)
	assert.Equal(t, -5, store.movements[0].Quantity)
	assert.Equal(t, 5, store.movements[1].Quantity)
	assert.Equal(t, store.movements[0].TransactionID, store.movements[1].TransactionID)
}

func TestCreateTransfer_SinTecnicoNoRegistraActividad(t *testing.T) {
	store, activityRepo, uc := newTransferFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "X", Name: "X", StoreStock: 8})

	result, err := uc.CreateTransfer(context.Background(), TransferInput{
		ProductID:    "p1",
		FromLocation: entity.LocationStore,
		ToLocation:   entity.LocationWarehouse,
		Quantity:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Product.WarehouseStock)
	assert.Equal(t, 5, result.Product.StoreStock)
	assert.Empty(t, activityRepo.activities)
	assert.Empty(t, result.ActivityID)
}

// Disponibilidad estricta: pedir más de lo que hay en el origen rechaza el
// traslado completo con el detalle del faltante.
func TestCreateTransfer_StockInsuficiente(t *testing.T) {
	store, _, uc := newTransferFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "FIL-001", Name: "Filtro", WarehouseStock: 3})

	_, err := uc.CreateTransfer(context.Background(), TransferInput{
		ProductID:    "p1",
		FromLocation: entity.LocationWarehouse,
		ToLocation:   entity.LocationStore,
		Quantity:     5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var shortage *domain.StockShortageError
	require.ErrorAs(t, err, &shortage)
	require.Len(t, shortage.Items, 1)
	assert.Equal(t, "p1", shortage.Items[0].ProductID)
	assert.Equal(t, 5, shortage.Items[0].Requested)
	assert.Equal(t, 3, shortage.Items[0].Available)

	// Nada cambió.
	p := store.products["p1"]
	assert.Equal(t, 3, p.WarehouseStock)
	assert.Equal(t, 0, p.StoreStock)
	assert.Empty(t, store.transfers)
	assert.Empty(t, store.movements)
}

func TestCreateTransfer_Validaciones(t *testing.T) {
	store, _, uc := newTransferFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "X", Name: "X", WarehouseStock: 10})

	cases := []struct {
		name    string
		input   TransferInput
		wantErr error
	}{
		{"cantidad cero", TransferInput{ProductID: "p1", FromLocation: entity.LocationWarehouse, ToLocation: entity.LocationStore, Quantity: 0}, domain.ErrInvalidInput},
		{"origen igual a destino", TransferInput{ProductID: "p1", FromLocation: entity.LocationStore, ToLocation: entity.LocationStore, Quantity: 1}, domain.ErrInvalidLocation},
		{"ubicación desconocida", TransferInput{ProductID: "p1", FromLocation: "truck", ToLocation: entity.LocationStore, Quantity: 1}, domain.ErrInvalidLocation},
		{"técnico sin tipo de actividad válido", TransferInput{ProductID: "p1", FromLocation: entity.LocationWarehouse, ToLocation: entity.LocationStore, Quantity: 1, TechnicianName: "Juan", ActivityType: "paseo"}, domain.ErrInvalidInput},
		{"producto inexistente", TransferInput{ProductID: "nope", FromLocation: entity.LocationWarehouse, ToLocation: entity.LocationStore, Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateTransfer(context.Background(), tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// La bitácora es best-effort: si falla después de confirmar el traslado, el stock
// movido se mantiene y el error se reporta como advertencia.
func TestCreateTransfer_FalloDeActividadNoRevierteTraslado(t *testing.T) {
	store, activityRepo, uc := newTransferFixture()
	store.addProduct(&entity.Product{ID: "p1", SKU: "X", Name: "X", WarehouseStock: 10})
	activityRepo.failCreate = errors.New("bitácora caída")

	result, err := uc.CreateTransfer(context.Background(), TransferInput{
		ProductID:      "p1",
		FromLocation:   entity.LocationWarehouse,
		ToLocation:     entity.LocationStore,
		Quantity:       4,
		TechnicianName: "Juan",
		ActivityType:   entity.ActivityTypeRepair,
	})
	require.NoError(t, err, "el traslado debe confirmarse igual")

	assert.Equal(t, 6, result.Product.WarehouseStock)
	assert.Equal(t, 4, result.Product.StoreStock)
	require.Error(t, result.ActivityErr)
	assert.Empty(t, result.ActivityID)
	require.Len(t, store.transfers, 1)
}
