package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/servitec-crm/internal/domain/repository"
)

// ValuationUseCase reporte de valoración: unidades en mano y valor del inventario
// al costo promedio ponderado.
type ValuationUseCase struct {
	productRepo repository.ProductRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(productRepo repository.ProductRepository) *ValuationUseCase {
	return &ValuationUseCase{productRepo: productRepo}
}

// ValuationReport filas por producto + totales.
type ValuationReport struct {
	Rows       []repository.ValuationRow
	TotalUnits int
	TotalValue decimal.Decimal
}

// Valuation calcula el reporte sobre los productos con stock.
func (uc *ValuationUseCase) Valuation(ctx context.Context) (*ValuationReport, error) {
	rows, err := uc.productRepo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	report := &ValuationReport{Rows: rows}
	for _, row := range rows {
		report.TotalUnits += row.Units
		report.TotalValue = report.TotalValue.Add(row.TotalValue)
	}
	return report, nil
}
