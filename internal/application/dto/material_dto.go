package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest entrada para dar de alta un metal o piedra en el catálogo.
type CreateMaterialRequest struct {
	Kind   string          `json:"kind" validate:"required,oneof=METAL GEMSTONE"`
	Code   string          `json:"code" validate:"required,min=1,max=50"`
	Name   string          `json:"name" validate:"required,min=1,max=200"`
	Purity string          `json:"purity"`
	Rate   decimal.Decimal `json:"rate_per_gram"`
}

// UpdateRateRequest nueva tarifa de compra por gramo (rupias).
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate_per_gram"`
}

// MaterialResponse salida de una entrada del catálogo.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Purity    string          `json:"purity,omitempty"`
	Rate      decimal.Decimal `json:"rate_per_gram"`
	UpdatedAt time.Time       `json:"updated_at"`
}
