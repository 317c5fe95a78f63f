package pricing

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Tipos de línea de composición.
const (
	LineKindMaterial = "MATERIAL"
	LineKindGemstone = "GEMSTONE"
)

// MaterialLine una fila de metal (oro, plata...) usada en la pieza.
type MaterialLine struct {
	MaterialID  string
	WeightGrams decimal.Decimal
	RatePerGram decimal.Decimal // tarifa de compra por gramo
}

// GemstoneLine una fila de piedra. Opcional: cero o más por pieza.
type GemstoneLine struct {
	GemstoneID  string
	WeightGrams decimal.Decimal
	RatePerGram decimal.Decimal
}

// LineCost costo de una línea ya redondeado a 2 decimales (para el desglose y el reporte).
type LineCost struct {
	Kind        string
	RefID       string
	WeightGrams decimal.Decimal
	RatePerGram decimal.Decimal
	Cost        decimal.Decimal
}

// Composition resultado de agregar las líneas de una pieza.
// MaterialsCost y GemstonesCost son la suma de los costos por línea ya redondeados,
// de modo que las filas del desglose siempre suman el total mostrado.
type Composition struct {
	GrossWeight   decimal.Decimal
	MaterialsCost decimal.Decimal
	GemstonesCost decimal.Decimal
	Lines         []LineCost
}

type line struct {
	kind   string
	id     string
	weight decimal.Decimal
	rate   decimal.Decimal
}

func materialLines(materials []MaterialLine) []line {
	return lo.Map(materials, func(m MaterialLine, _ int) line {
		return line{kind: LineKindMaterial, id: m.MaterialID, weight: m.WeightGrams, rate: m.RatePerGram}
	})
}

func gemstoneLines(gemstones []GemstoneLine) []line {
	return lo.Map(gemstones, func(g GemstoneLine, _ int) line {
		return line{kind: LineKindGemstone, id: g.GemstoneID, weight: g.WeightGrams, rate: g.RatePerGram}
	})
}

// weighable: con identificador y peso > 0. Las líneas incompletas se excluyen en silencio.
func weighable(l line, _ int) bool {
	return strings.TrimSpace(l.id) != "" && l.weight.IsPositive()
}

func costable(l line, i int) bool {
	return weighable(l, i) && l.rate.IsPositive()
}

// LineTotal costo de una línea: peso × tarifa redondeado a 2 decimales.
func LineTotal(weightGrams, ratePerGram decimal.Decimal) decimal.Decimal {
	return RoundMoney(weightGrams.Mul(ratePerGram))
}

func sumWeight(lines []line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lo.Filter(lines, weighable) {
		total = total.Add(l.weight)
	}
	return total
}

func sumCost(lines []line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lo.Filter(lines, costable) {
		total = total.Add(LineTotal(l.weight, l.rate))
	}
	return total
}

// TotalWeight peso bruto: Σ pesos de metales + Σ pesos de piedras (sin merma).
func TotalWeight(materials []MaterialLine, gemstones []GemstoneLine) decimal.Decimal {
	return sumWeight(materialLines(materials)).Add(sumWeight(gemstoneLines(gemstones)))
}

// TotalCost costo bruto de materiales y piedras: Σ costos por línea redondeados.
func TotalCost(materials []MaterialLine, gemstones []GemstoneLine) decimal.Decimal {
	return sumCost(materialLines(materials)).Add(sumCost(gemstoneLines(gemstones)))
}

// Aggregate agrega la composición completa y expone el costo por línea.
func Aggregate(materials []MaterialLine, gemstones []GemstoneLine) Composition {
	ms := materialLines(materials)
	gs := gemstoneLines(gemstones)

	all := append(append(make([]line, 0, len(ms)+len(gs)), ms...), gs...)
	costs := lo.Map(lo.Filter(all, costable), func(l line, _ int) LineCost {
		return LineCost{
			Kind:        l.kind,
			RefID:       l.id,
			WeightGrams: l.weight,
			RatePerGram: l.rate,
			Cost:        LineTotal(l.weight, l.rate),
		}
	})

	return Composition{
		GrossWeight:   sumWeight(ms).Add(sumWeight(gs)),
		MaterialsCost: sumCost(ms),
		GemstonesCost: sumCost(gs),
		Lines:         costs,
	}
}
