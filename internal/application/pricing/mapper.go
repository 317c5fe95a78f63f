package pricing

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

// Conversión entre DTOs, entidades (unidades de almacenamiento) y entradas del motor.
// Toda conversión mg/paise ⇄ gramos/rupias pasa por el conversor del motor.

func checkLines(lines []dto.LineRequest) error {
	for _, l := range lines {
		if l.WeightGrams.IsNegative() || l.RatePerGram.IsNegative() {
			return fmt.Errorf("línea %q: %w", l.RefID, domain.ErrNegativeUnitInput)
		}
	}
	return nil
}

func materialLines(lines []dto.LineRequest) []engine.MaterialLine {
	return lo.Map(lines, func(l dto.LineRequest, _ int) engine.MaterialLine {
		return engine.MaterialLine{MaterialID: l.RefID, WeightGrams: l.WeightGrams, RatePerGram: l.RatePerGram}
	})
}

func gemstoneLines(lines []dto.LineRequest) []engine.GemstoneLine {
	return lo.Map(lines, func(l dto.LineRequest, _ int) engine.GemstoneLine {
		return engine.GemstoneLine{GemstoneID: l.RefID, WeightGrams: l.WeightGrams, RatePerGram: l.RatePerGram}
	})
}

// ChargePolicyFromDTO interpreta la política recibida; un tipo desconocido es ErrInvalidChargePolicy.
func ChargePolicyFromDTO(c dto.ChargePolicyDTO) (engine.ChargePolicy, error) {
	kind, err := engine.ParseChargeKind(c.Kind)
	if err != nil {
		return engine.ChargePolicy{}, err
	}
	return engine.ChargePolicy{Kind: kind, Value: c.Value}, nil
}

// InputsFromRequest arma las entradas del motor desde los campos del formulario.
func InputsFromRequest(materials, gemstones []dto.LineRequest, wastage decimal.Decimal, charge dto.ChargePolicyDTO) (engine.Inputs, error) {
	if err := checkLines(materials); err != nil {
		return engine.Inputs{}, err
	}
	if err := checkLines(gemstones); err != nil {
		return engine.Inputs{}, err
	}
	policy, err := ChargePolicyFromDTO(charge)
	if err != nil {
		return engine.Inputs{}, err
	}
	return engine.Inputs{
		Materials:      materialLines(materials),
		Gemstones:      gemstoneLines(gemstones),
		WastagePercent: wastage,
		ChargePolicy:   policy,
	}, nil
}

// ToQuoteResponse convierte el resultado del motor al desglose mostrado.
func ToQuoteResponse(r engine.Result) dto.QuoteResponse {
	shown := r.Breakdown.Display()
	return dto.QuoteResponse{
		GrossWeight: engine.RoundWeight(r.GrossWeight),
		Breakdown: dto.BreakdownDTO{
			MaterialsCost:      shown.MaterialsCost,
			GemstonesCost:      shown.GemstonesCost,
			WastageAmount:      shown.WastageAmount,
			MakingChargeAmount: shown.MakingChargeAmount,
			MaterialsGST:       shown.MaterialsGST,
			GemstonesGST:       shown.GemstonesGST,
			MakingChargeGST:    shown.MakingChargeGST,
			BuyingCost:         shown.BuyingCost,
			SellingPrice:       shown.SellingPrice,
		},
		Lines: lo.Map(r.Lines, func(l engine.LineCost, _ int) dto.LineCostDTO {
			return dto.LineCostDTO{
				Kind:        l.Kind,
				RefID:       l.RefID,
				WeightGrams: l.WeightGrams,
				RatePerGram: l.RatePerGram,
				Cost:        l.Cost,
			}
		}),
	}
}

// StoredLines convierte líneas del formulario a unidades de almacenamiento.
// Un peso o tarifa negativa llega al conversor y produce ErrNegativeUnitInput.
func StoredLines(lines []dto.LineRequest) ([]entity.StoredLine, error) {
	out := make([]entity.StoredLine, 0, len(lines))
	for _, l := range lines {
		mg, err := engine.GramsToMilligrams(l.WeightGrams)
		if err != nil {
			return nil, fmt.Errorf("línea %q: %w", l.RefID, err)
		}
		paise, err := engine.RupeesToPaise(l.RatePerGram)
		if err != nil {
			return nil, fmt.Errorf("línea %q: %w", l.RefID, err)
		}
		out = append(out, entity.StoredLine{RefID: l.RefID, WeightMg: mg, RatePaise: paise})
	}
	return out, nil
}

// StoredComposition convierte materiales y piedras del formulario a una composición persistible.
func StoredComposition(materials, gemstones []dto.LineRequest) (entity.Composition, error) {
	ms, err := StoredLines(materials)
	if err != nil {
		return entity.Composition{}, err
	}
	gs, err := StoredLines(gemstones)
	if err != nil {
		return entity.Composition{}, err
	}
	return entity.Composition{Materials: ms, Gemstones: gs}, nil
}

// LineResponses convierte líneas persistidas a gramos y rupias.
func LineResponses(lines []entity.StoredLine) []dto.LineResponse {
	return lo.Map(lines, func(l entity.StoredLine, _ int) dto.LineResponse {
		return dto.LineResponse{
			RefID:       l.RefID,
			WeightGrams: engine.MilligramsToGrams(l.WeightMg),
			RatePerGram: engine.PaiseToRupees(l.RatePaise),
		}
	})
}

// InputsFromItem arma las entradas del motor para una composición guardada con la
// merma y el cargo de la pieza. Incluye el costo manual si la pieza lo tiene.
func InputsFromItem(item *entity.JewelryItem, comp entity.Composition) (engine.Inputs, error) {
	kind, err := engine.ParseChargeKind(item.ChargeKind)
	if err != nil {
		return engine.Inputs{}, err
	}
	in := engine.Inputs{
		Materials: lo.Map(comp.Materials, func(l entity.StoredLine, _ int) engine.MaterialLine {
			return engine.MaterialLine{
				MaterialID:  l.RefID,
				WeightGrams: engine.MilligramsToGrams(l.WeightMg),
				RatePerGram: engine.PaiseToRupees(l.RatePaise),
			}
		}),
		Gemstones: lo.Map(comp.Gemstones, func(l entity.StoredLine, _ int) engine.GemstoneLine {
			return engine.GemstoneLine{
				GemstoneID:  l.RefID,
				WeightGrams: engine.MilligramsToGrams(l.WeightMg),
				RatePerGram: engine.PaiseToRupees(l.RatePaise),
			}
		}),
		WastagePercent: item.WastagePercent,
		ChargePolicy:   engine.ChargePolicy{Kind: kind, Value: item.ChargeValue},
	}
	return in, nil
}

// FieldsFromItem campos derivados actuales de una pieza guardada.
func FieldsFromItem(item *entity.JewelryItem) engine.DerivedFields {
	return engine.DerivedFields{
		GrossWeight:      engine.MilligramsToGrams(item.GrossWeightMg),
		BuyingCost:       engine.PaiseToRupees(item.BuyingCostPaise),
		SellingPrice:     engine.PaiseToRupees(item.SellingPricePaise),
		BuyingCostManual: item.BuyingCostManual,
	}
}

// ApplyFieldsToItem escribe los campos derivados en la pieza en unidades de almacenamiento.
func ApplyFieldsToItem(item *entity.JewelryItem, f engine.DerivedFields) error {
	mg, err := engine.GramsToMilligrams(f.GrossWeight)
	if err != nil {
		return err
	}
	buying, err := engine.RupeesToPaise(f.BuyingCost)
	if err != nil {
		return err
	}
	selling, err := engine.RupeesToPaise(f.SellingPrice)
	if err != nil {
		return err
	}
	item.GrossWeightMg = mg
	item.BuyingCostPaise = buying
	item.BuyingCostManual = f.BuyingCostManual
	item.SellingPricePaise = selling
	return nil
}

func fieldsFromDTO(f dto.DerivedFieldsDTO) engine.DerivedFields {
	return engine.DerivedFields{
		GrossWeight:      f.GrossWeight,
		BuyingCost:       f.BuyingCost,
		SellingPrice:     f.SellingPrice,
		BuyingCostManual: f.BuyingCostManual,
	}
}

// FieldsToDTO campos derivados para la respuesta.
func FieldsToDTO(f engine.DerivedFields) dto.DerivedFieldsDTO {
	return dto.DerivedFieldsDTO{
		GrossWeight:      engine.RoundWeight(f.GrossWeight),
		BuyingCost:       engine.RoundMoney(f.BuyingCost),
		SellingPrice:     f.SellingPrice,
		BuyingCostManual: f.BuyingCostManual,
	}
}
