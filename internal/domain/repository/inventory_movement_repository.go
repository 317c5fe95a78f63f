package repository

import "github.com/jhoicas/joyeria-api/internal/domain/entity"

// InventoryMovementRepository define el puerto de persistencia para movimientos de inventario.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.InventoryMovement, error)
}
