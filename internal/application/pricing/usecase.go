package pricing

import (
	"github.com/jhoicas/joyeria-api/internal/application/dto"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

// QuoteUseCase expone el motor de precios al formulario de creación y a cualquier pantalla
// que necesite un precio sin persistir nada.
type QuoteUseCase struct{}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

// Quote calcula peso bruto, desglose y precio de venta para una composición.
func (uc *QuoteUseCase) Quote(in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	inputs, err := InputsFromRequest(in.Materials, in.Gemstones, in.WastagePercent, in.Charge)
	if err != nil {
		return nil, err
	}
	inputs.BuyingCostOverride = in.BuyingCostOverride

	r, err := engine.Compose(inputs)
	if err != nil {
		return nil, err
	}
	out := ToQuoteResponse(r)
	return &out, nil
}

// Recalculate aplica la edición recibida sobre los campos derivados del formulario y
// recalcula. Devuelve los valores que el formulario debe mostrar.
func (uc *QuoteUseCase) Recalculate(in dto.RecalculateRequest) (*dto.RecalculateResponse, error) {
	inputs, err := InputsFromRequest(in.Materials, in.Gemstones, in.WastagePercent, in.Charge)
	if err != nil {
		return nil, err
	}

	fields := fieldsFromDTO(in.Fields)
	if in.Reset {
		fields.Reset()
	}
	if in.BuyingCostEdit != nil {
		fields.EditBuyingCost(*in.BuyingCostEdit)
	}

	fields, r, err := engine.Recompute(fields, inputs)
	if err != nil {
		return nil, err
	}
	return &dto.RecalculateResponse{
		Fields: FieldsToDTO(fields),
		Quote:  ToQuoteResponse(r),
	}, nil
}
