package pricing

import "github.com/shopspring/decimal"

// Tasas de GST fijas (no son entrada del usuario).
// TODO: mover a configuración por jurisdicción si se vende fuera de India.
var (
	MaterialsGSTRate    = decimal.RequireFromString("0.03")
	GemstonesGSTRate    = decimal.RequireFromString("0.03")
	MakingChargeGSTRate = decimal.RequireFromString("0.05")
)

// GST los tres componentes de impuesto, calculados de forma independiente.
type GST struct {
	Materials    decimal.Decimal
	Gemstones    decimal.Decimal
	MakingCharge decimal.Decimal
}

// Total suma de los tres componentes.
func (g GST) Total() decimal.Decimal {
	return g.Materials.Add(g.Gemstones).Add(g.MakingCharge)
}

// ComputeGST aplica las tasas sobre las bases previas a la merma: la merma no paga GST.
func ComputeGST(materialsCost, gemstonesCost, makingCharge decimal.Decimal) GST {
	return GST{
		Materials:    materialsCost.Mul(MaterialsGSTRate),
		Gemstones:    gemstonesCost.Mul(GemstonesGSTRate),
		MakingCharge: makingCharge.Mul(MakingChargeGSTRate),
	}
}
