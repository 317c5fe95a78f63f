package dto

import "github.com/shopspring/decimal"

// LineRequest una línea de composición en unidades de visualización (gramos, rupias).
type LineRequest struct {
	RefID       string          `json:"ref_id"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
}

// ChargePolicyDTO política de cargo de fabricación: kind PERCENTAGE | FIXED | PER_GRAM.
type ChargePolicyDTO struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// QuoteRequest body para POST /api/pricing/quote.
type QuoteRequest struct {
	Materials          []LineRequest    `json:"materials"`
	Gemstones          []LineRequest    `json:"gemstones"`
	WastagePercent     decimal.Decimal  `json:"wastage_percent"`
	Charge             ChargePolicyDTO  `json:"charge"`
	BuyingCostOverride *decimal.Decimal `json:"buying_cost_override,omitempty"`
}

// BreakdownDTO desglose mostrado: los componentes suman exactamente selling_price.
type BreakdownDTO struct {
	MaterialsCost      decimal.Decimal `json:"materials_cost"`
	GemstonesCost      decimal.Decimal `json:"gemstones_cost"`
	WastageAmount      decimal.Decimal `json:"wastage_amount"`
	MakingChargeAmount decimal.Decimal `json:"making_charge_amount"`
	MaterialsGST       decimal.Decimal `json:"materials_gst"`
	GemstonesGST       decimal.Decimal `json:"gemstones_gst"`
	MakingChargeGST    decimal.Decimal `json:"making_charge_gst"`
	BuyingCost         decimal.Decimal `json:"buying_cost"`
	SellingPrice       decimal.Decimal `json:"selling_price"`
}

// LineCostDTO costo por línea para el detalle del desglose.
type LineCostDTO struct {
	Kind        string          `json:"kind"`
	RefID       string          `json:"ref_id"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
	Cost        decimal.Decimal `json:"cost"`
}

// QuoteResponse salida del motor de precios.
type QuoteResponse struct {
	GrossWeight decimal.Decimal `json:"gross_weight"`
	Breakdown   BreakdownDTO    `json:"breakdown"`
	Lines       []LineCostDTO   `json:"lines"`
}

// DerivedFieldsDTO valores actuales de los campos autocalculados del formulario.
type DerivedFieldsDTO struct {
	GrossWeight      decimal.Decimal `json:"gross_weight"`
	BuyingCost       decimal.Decimal `json:"buying_cost"`
	SellingPrice     decimal.Decimal `json:"selling_price"`
	BuyingCostManual bool            `json:"buying_cost_manual"`
}

// RecalculateRequest body para POST /api/pricing/recalculate.
// BuyingCostEdit presente indica que el usuario acaba de editar el costo de compra;
// Reset limpia los campos derivados antes de recalcular (pieza nueva).
type RecalculateRequest struct {
	Materials      []LineRequest    `json:"materials"`
	Gemstones      []LineRequest    `json:"gemstones"`
	WastagePercent decimal.Decimal  `json:"wastage_percent"`
	Charge         ChargePolicyDTO  `json:"charge"`
	Fields         DerivedFieldsDTO `json:"fields"`
	BuyingCostEdit *decimal.Decimal `json:"buying_cost_edit,omitempty"`
	Reset          bool             `json:"reset"`
}

// RecalculateResponse nuevos valores de los campos y desglose vigente.
type RecalculateResponse struct {
	Fields DerivedFieldsDTO `json:"fields"`
	Quote  QuoteResponse    `json:"quote"`
}
