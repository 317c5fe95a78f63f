package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain"
)

var cent = decimal.New(1, -MoneyPlaces)

// Inputs foto completa de los campos del formulario en unidades de visualización.
// BuyingCostOverride nil o cero significa costo de compra automático (materiales + piedras).
type Inputs struct {
	Materials          []MaterialLine
	Gemstones          []GemstoneLine
	WastagePercent     decimal.Decimal
	ChargePolicy       ChargePolicy
	BuyingCostOverride *decimal.Decimal
}

// Breakdown desglose de costo. Todos los campos salvo SellingPrice van sin redondear;
// usar Display() para lo que se muestra al usuario.
//
// SellingPrice = BuyingCost + MakingChargeAmount + WastageAmount + MaterialsGST + GemstonesGST + MakingChargeGST
type Breakdown struct {
	MaterialsCost      decimal.Decimal
	GemstonesCost      decimal.Decimal
	WastageAmount      decimal.Decimal
	MakingChargeAmount decimal.Decimal
	MaterialsGST       decimal.Decimal
	GemstonesGST       decimal.Decimal
	MakingChargeGST    decimal.Decimal
	BuyingCost         decimal.Decimal
	SellingPrice       decimal.Decimal
}

// Result salida de Compose: peso bruto, desglose y costo por línea.
type Result struct {
	GrossWeight decimal.Decimal
	Breakdown   Breakdown
	Lines       []LineCost
}

// Compose ejecuta el motor completo: composición → cargo → merma → GST → precio de venta.
// El redondeo a 2 decimales se aplica solo al precio final.
func Compose(in Inputs) (Result, error) {
	if in.WastagePercent.IsNegative() {
		return Result{}, fmt.Errorf("merma %s%%: %w", in.WastagePercent.String(), domain.ErrNegativeUnitInput)
	}
	if err := in.ChargePolicy.Validate(); err != nil {
		return Result{}, err
	}

	comp := Aggregate(in.Materials, in.Gemstones)

	buyingCost := comp.MaterialsCost.Add(comp.GemstonesCost)
	if in.BuyingCostOverride != nil {
		if in.BuyingCostOverride.IsNegative() {
			return Result{}, fmt.Errorf("costo de compra %s: %w", in.BuyingCostOverride.String(), domain.ErrNegativeUnitInput)
		}
		// Cero equivale a sin override, igual que EditBuyingCost.
		if !in.BuyingCostOverride.IsZero() {
			buyingCost = *in.BuyingCostOverride
		}
	}

	makingCharge, err := MakingCharge(in.ChargePolicy, buyingCost, comp.GrossWeight)
	if err != nil {
		return Result{}, err
	}
	wastage := buyingCost.Mul(in.WastagePercent).Div(hundred)
	gst := ComputeGST(comp.MaterialsCost, comp.GemstonesCost, makingCharge)

	b := Breakdown{
		MaterialsCost:      comp.MaterialsCost,
		GemstonesCost:      comp.GemstonesCost,
		WastageAmount:      wastage,
		MakingChargeAmount: makingCharge,
		MaterialsGST:       gst.Materials,
		GemstonesGST:       gst.Gemstones,
		MakingChargeGST:    gst.MakingCharge,
		BuyingCost:         buyingCost,
	}
	b.SellingPrice = RoundMoney(b.Components())

	return Result{GrossWeight: comp.GrossWeight, Breakdown: b, Lines: comp.Lines}, nil
}

// Components suma de los componentes que forman el precio de venta (sin redondear).
func (b Breakdown) Components() decimal.Decimal {
	return b.BuyingCost.
		Add(b.MakingChargeAmount).
		Add(b.WastageAmount).
		Add(b.MaterialsGST).
		Add(b.GemstonesGST).
		Add(b.MakingChargeGST)
}

// Display devuelve el desglose a 2 decimales tal como se muestra.
// Los componentes se truncan al centavo y los centavos faltantes se asignan a los de mayor
// residuo (mayor resto), así la suma mostrada es exactamente SellingPrice y ningún
// componente se aleja más de 0.01 de su valor real.
func (b Breakdown) Display() Breakdown {
	parts := []*decimal.Decimal{
		&b.BuyingCost,
		&b.MakingChargeAmount,
		&b.WastageAmount,
		&b.MaterialsGST,
		&b.GemstonesGST,
		&b.MakingChargeGST,
	}

	type residue struct {
		idx int
		rem decimal.Decimal
	}
	residues := make([]residue, 0, len(parts))
	floored := decimal.Zero
	for i, p := range parts {
		f := p.Truncate(MoneyPlaces)
		residues = append(residues, residue{idx: i, rem: p.Sub(f)})
		floored = floored.Add(f)
		*p = f
	}

	sort.SliceStable(residues, func(i, j int) bool {
		return residues[i].rem.GreaterThan(residues[j].rem)
	})
	missing := b.SellingPrice.Sub(floored).Div(cent).IntPart()
	for i := 0; i < int(missing) && i < len(residues); i++ {
		if !residues[i].rem.IsPositive() {
			break
		}
		p := parts[residues[i].idx]
		*p = p.Add(cent)
	}

	b.MaterialsCost = RoundMoney(b.MaterialsCost)
	b.GemstonesCost = RoundMoney(b.GemstonesCost)
	return b
}
