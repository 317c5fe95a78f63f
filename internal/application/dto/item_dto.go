package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantRequest variante con su propia composición.
type VariantRequest struct {
	Code      string        `json:"code"`
	Label     string        `json:"label"`
	Materials []LineRequest `json:"materials"`
	Gemstones []LineRequest `json:"gemstones"`
}

// CreateItemRequest entrada para crear una pieza. BuyingCost presente y distinto de cero
// fija el costo de compra manualmente; ausente o cero lo deja automático.
type CreateItemRequest struct {
	SKU            string           `json:"sku" validate:"required,min=1,max=100"`
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description"`
	Materials      []LineRequest    `json:"materials" validate:"required,min=1"`
	Gemstones      []LineRequest    `json:"gemstones"`
	Variants       []VariantRequest `json:"variants"`
	WastagePercent decimal.Decimal  `json:"wastage_percent"`
	Charge         ChargePolicyDTO  `json:"charge"`
	BuyingCost     *decimal.Decimal `json:"buying_cost,omitempty"`
	Quantity       int64            `json:"quantity"`
}

// UpdateItemRequest entrada para actualizar una pieza (sin Quantity: se maneja vía movimientos).
// Materials/Gemstones/Variants nil = sin cambios.
type UpdateItemRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description"`
	Materials      []LineRequest    `json:"materials"`
	Gemstones      []LineRequest    `json:"gemstones"`
	Variants       []VariantRequest `json:"variants"`
	WastagePercent *decimal.Decimal `json:"wastage_percent"`
	Charge         *ChargePolicyDTO `json:"charge"`
	BuyingCost     *decimal.Decimal `json:"buying_cost"`
}

// LineResponse línea de composición convertida a gramos y rupias.
type LineResponse struct {
	RefID       string          `json:"ref_id"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
	RatePerGram decimal.Decimal `json:"rate_per_gram"`
}

// VariantResponse variante tal como está guardada.
type VariantResponse struct {
	Code      string         `json:"code"`
	Label     string         `json:"label"`
	Materials []LineResponse `json:"materials"`
	Gemstones []LineResponse `json:"gemstones"`
}

// ItemResponse salida de una pieza.
type ItemResponse struct {
	ID               string            `json:"id"`
	CompanyID        string            `json:"company_id"`
	SKU              string            `json:"sku"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Materials        []LineResponse    `json:"materials"`
	Gemstones        []LineResponse    `json:"gemstones"`
	Variants         []VariantResponse `json:"variants"`
	WastagePercent   decimal.Decimal   `json:"wastage_percent"`
	Charge           ChargePolicyDTO   `json:"charge"`
	GrossWeight      decimal.Decimal   `json:"gross_weight"`
	BuyingCost       decimal.Decimal   `json:"buying_cost"`
	BuyingCostManual bool              `json:"buying_cost_manual"`
	SellingPrice     decimal.Decimal   `json:"selling_price"`
	Quantity         int64             `json:"quantity"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ItemListResponse lista paginada de piezas.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ItemBreakdownResponse desglose recalculado de una pieza guardada (vista de detalle).
type ItemBreakdownResponse struct {
	ItemID string        `json:"item_id"`
	SKU    string        `json:"sku"`
	Quote  QuoteResponse `json:"quote"`
}

// VariantPriceResponse precio de una variante.
type VariantPriceResponse struct {
	Code  string        `json:"code"`
	Label string        `json:"label"`
	Quote QuoteResponse `json:"quote"`
}

// VariantPriceListResponse precios de todas las variantes de una pieza.
type VariantPriceListResponse struct {
	ItemID   string                 `json:"item_id"`
	Variants []VariantPriceResponse `json:"variants"`
}
