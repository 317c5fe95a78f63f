// Package pricing contiene el motor de costeo y precio de joyas: agregación de la
// composición (metales + piedras), cargo de fabricación, GST y desglose final.
//
// Todas las funciones son puras: reciben una foto completa de las entradas y devuelven
// una salida completa. No hay estado interno ni I/O; el llamador decide cuándo recalcular.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain"
)

// Precisión de visualización. Unidades de almacenamiento: miligramos y paise (enteros).
const (
	WeightPlaces int32 = 3
	MoneyPlaces  int32 = 2
	PolicyPlaces int32 = 3
)

var (
	mgPerGram     = decimal.NewFromInt(1000)
	paisePerRupee = decimal.NewFromInt(100)
)

// RoundWeight redondea gramos a 3 decimales (half-up). Única regla de redondeo de pesos.
func RoundWeight(g decimal.Decimal) decimal.Decimal {
	return g.Round(WeightPlaces)
}

// RoundMoney redondea rupias a 2 decimales (half-up). Única regla de redondeo de montos.
func RoundMoney(r decimal.Decimal) decimal.Decimal {
	return r.Round(MoneyPlaces)
}

// RoundPolicy redondea porcentaje de merma y valor del cargo a la precisión con que se guardan.
func RoundPolicy(v decimal.Decimal) decimal.Decimal {
	return v.Round(PolicyPlaces)
}

// GramsToMilligrams convierte gramos a miligramos enteros. No recorta negativos: los rechaza.
func GramsToMilligrams(g decimal.Decimal) (int64, error) {
	if g.IsNegative() {
		return 0, fmt.Errorf("gramos %s: %w", g.String(), domain.ErrNegativeUnitInput)
	}
	return g.Mul(mgPerGram).Round(0).IntPart(), nil
}

// MilligramsToGrams convierte miligramos a gramos sin redondeo adicional.
func MilligramsToGrams(mg int64) decimal.Decimal {
	return decimal.NewFromInt(mg).Div(mgPerGram)
}

// RupeesToPaise convierte rupias a paise enteros (half-up).
func RupeesToPaise(r decimal.Decimal) (int64, error) {
	if r.IsNegative() {
		return 0, fmt.Errorf("rupias %s: %w", r.String(), domain.ErrNegativeUnitInput)
	}
	return r.Mul(paisePerRupee).Round(0).IntPart(), nil
}

// PaiseToRupees convierte paise a rupias sin redondeo adicional.
func PaiseToRupees(p int64) decimal.Decimal {
	return decimal.NewFromInt(p).Div(paisePerRupee)
}
