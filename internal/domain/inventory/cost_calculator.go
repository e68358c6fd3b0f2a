package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Con stock actual cero el resultado es el costo de la entrada. El resultado se
// mantiene a precisión completa; el redondeo a 2 decimales es solo de presentación.
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if stockActual.LessThanOrEqual(decimal.Zero) {
		return costoEntrada
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// ResolveCurrentCost elige el costo vigente para promediar: el promedio ponderado
// si existe, si no el costo de la última compra, y en último caso el costo entrante
// (producto sin historial). Valor cero se interpreta como "sin definir".
func ResolveCurrentCost(averageCost, lastCost, incomingCost decimal.Decimal) decimal.Decimal {
	if !averageCost.IsZero() {
		return averageCost
	}
	if !lastCost.IsZero() {
		return lastCost
	}
	return incomingCost
}
