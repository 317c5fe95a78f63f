package repository

// StockRepository define el puerto para leer/escribir la cantidad en stock de una pieza.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	// GetForUpdate devuelve la cantidad actual bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(itemID string) (int64, error)
	SetQuantity(itemID string, quantity int64) error
}
