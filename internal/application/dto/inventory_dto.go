package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity siempre positivo para IN/OUT; en ADJUSTMENT el signo indica la dirección.
type RegisterMovementRequest struct {
	ItemID    string `json:"item_id"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	Reference string `json:"reference,omitempty"`
}

// MovementResponse resultado de un movimiento registrado.
type MovementResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	NewQuantity int64           `json:"new_quantity"`
	CreatedAt   time.Time       `json:"created_at"`
}
