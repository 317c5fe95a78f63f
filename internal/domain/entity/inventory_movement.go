package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida (venta, envío a taller)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste de conteo, puede ser negativo
)

// InventoryMovement movimiento de piezas de un ítem. Quantity positivo entra, negativo sale.
// UnitCostPaise es el costo de compra del ítem en el momento del movimiento.
type InventoryMovement struct {
	ID            string
	ItemID        string
	Type          string
	Quantity      int64
	UnitCostPaise int64
	Reference     string
	CreatedBy     string
	CreatedAt     time.Time
}
