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

func TestRecordActivity_RegistroManual(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewRecordActivityUseCase(repo)

	workDate := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	activity, err := uc.Record(context.Background(), RecordActivityInput{
		TechnicianName: "Juan",
		ActivityType:   entity.ActivityTypeMaintenance,
		ProductID:      "p1",
		ProductName:    "Filtro",
		Quantity:       2,
		Notes:          "mantenimiento preventivo",
		WorkDate:       workDate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, workDate, activity.WorkDate)
	assert.Nil(t, activity.TransferID, "registro manual sin traslado asociado")
	require.Len(t, repo.activities, 1)
}

func TestRecordActivity_FechaCeroUsaAhora(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewRecordActivityUseCase(repo)

	before := time.Now()
	activity, err := uc.Record(context.Background(), RecordActivityInput{
		TechnicianName: "Maria",
		ActivityType:   entity.ActivityTypeRepair,
		ProductID:      "p1",
		ProductName:    "Batería",
		Quantity:       1,
	})
	require.NoError(t, err)
	assert.False(t, activity.WorkDate.Before(before))
}

func TestRecordActivity_Validaciones(t *testing.T) {
	uc := NewRecordActivityUseCase(&fakeActivityRepo{})

	_, err := uc.Record(context.Background(), RecordActivityInput{
		TechnicianName: "", ActivityType: entity.ActivityTypeCheck, ProductID: "p1", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Record(context.Background(), RecordActivityInput{
		TechnicianName: "Juan", ActivityType: entity.ActivityTypeCheck, ProductID: "p1", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByTechnician_FiltraPorNombre(t *testing.T) {
	repo := &fakeActivityRepo{}
	uc := NewRecordActivityUseCase(repo)

	for _, name := range []string{"Juan", "Maria", "Juan"} {
		_, err := uc.Record(context.Background(), RecordActivityInput{
			TechnicianName: name,
			ActivityType:   entity.ActivityTypeCheck,
			ProductID:      "p1",
			ProductName:    "X",
			Quantity:       1,
		})
		require.NoError(t, err)
	}

	list, err := uc.ListByTechnician(context.Background(), "Juan", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
