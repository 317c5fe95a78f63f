// Package pdf genera el reporte de desglose de precio de una pieza de joyería.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la pieza + SKU  │  Fecha + Peso bruto     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Referencia | Peso (g) | Tarifa/g | Costo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: costo de compra, merma, cargo, GST por tramo      │
//	│  PRECIO DE VENTA                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

var _ usecase.BreakdownPDFGenerator = (*MarotoBreakdownGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 86, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Montos en formato indio (lakh/crore).
var printer = message.NewPrinter(language.MustParse("en-IN"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBreakdownGenerator implementa usecase.BreakdownPDFGenerator usando Maroto v2.
type MarotoBreakdownGenerator struct {
	now func() time.Time
}

// NewMarotoBreakdownGenerator construye el generador.
func NewMarotoBreakdownGenerator() *MarotoBreakdownGenerator {
	return &MarotoBreakdownGenerator{now: time.Now}
}

// GenerateBreakdownPDF genera el PDF y devuelve sus bytes.
func (g *MarotoBreakdownGenerator) GenerateBreakdownPDF(
	_ context.Context,
	item *entity.JewelryItem,
	breakdown dto.ItemBreakdownResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Desglose de precio "+item.SKU, true).
		Build()

	m := maroto.New(cfg)
	q := breakdown.Quote

	m.AddRows(headerRow(item, q.GrossWeight, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(lineRows(q.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(breakdownRows(q.Breakdown)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(item *entity.JewelryItem, grossWeight decimal.Decimal, at time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+item.SKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DESGLOSE DE PRECIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Peso bruto: "+formatGrams(grossWeight), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+at.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Referencia", 4, align.Left),
		h("Peso (g)", 2, align.Right),
		h("Tarifa / g", 2, align.Right),
		h("Costo", 2, align.Right),
	)
}

func lineRows(lines []dto.LineCostDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		kind := "Metal"
		if l.Kind == engine.LineKindGemstone {
			kind = "Piedra"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(kind, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.RefID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatGrams(l.WeightGrams), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(FormatRupees(l.RatePerGram), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(FormatRupees(l.Cost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// breakdownRows una fila por componente; los montos son los mostrados, que suman el precio de venta.
func breakdownRows(b dto.BreakdownDTO) []core.Row {
	entry := func(label string, v decimal.Decimal, style fontstyle.Type, size float64) core.Row {
		return row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(label, props.Text{Style: style, Size: size, Align: align.Right, Right: 2})),
			col.New(3).Add(text.New(FormatRupees(v), props.Text{Style: style, Size: size, Align: align.Right, Right: 1})),
		)
	}
	rows := []core.Row{
		entry("Metales:", b.MaterialsCost, fontstyle.Normal, 8),
		entry("Piedras:", b.GemstonesCost, fontstyle.Normal, 8),
		entry("Costo de compra:", b.BuyingCost, fontstyle.Bold, 9),
		entry("Merma:", b.WastageAmount, fontstyle.Normal, 9),
		entry("Cargo de fabricación:", b.MakingChargeAmount, fontstyle.Normal, 9),
		entry("GST metales (3%):", b.MaterialsGST, fontstyle.Normal, 9),
		entry("GST piedras (3%):", b.GemstonesGST, fontstyle.Normal, 9),
		entry("GST fabricación (5%):", b.MakingChargeGST, fontstyle.Normal, 9),
	}
	rows = append(rows, line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	rows = append(rows, row.New(9).Add(
		col.New(6),
		col.New(3).Add(text.New("PRECIO DE VENTA:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2,
		})),
		col.New(3).Add(text.New(FormatRupees(b.SellingPrice), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 1,
		})),
	))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatRupees formatea un monto con dos decimales y agrupación india. Ej: 1234567.5 → "Rs. 12,34,567.50".
func FormatRupees(v decimal.Decimal) string {
	f, _ := engine.RoundMoney(v).Float64()
	return "Rs. " + printer.Sprint(number.Decimal(f, number.Scale(int(engine.MoneyPlaces))))
}

func formatGrams(v decimal.Decimal) string {
	return engine.RoundWeight(v).StringFixed(engine.WeightPlaces)
}
