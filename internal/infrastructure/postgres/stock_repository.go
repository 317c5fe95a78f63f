package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo cantidad en stock de las piezas (columna items.quantity). Usable con pool o tx.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate obtiene la cantidad y bloquea la fila de la pieza (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(itemID string) (int64, error) {
	var qty int64
	err := r.q.QueryRow(context.Background(),
		`SELECT quantity FROM items WHERE id = $1 FOR UPDATE`, itemID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return qty, nil
}

// SetQuantity escribe la nueva cantidad. La restricción CHECK (quantity >= 0) de la tabla respalda la validación del caso de uso.
func (r *StockRepo) SetQuantity(itemID string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
