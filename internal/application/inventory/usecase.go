package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

// RegisterMovementUseCase registra movimientos de piezas (IN, OUT, ADJUSTMENT) de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE). Ninguna pieza puede quedar con cantidad negativa.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.InventoryMovementRepository
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	movRepo repository.InventoryMovementRepository,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		movRepo:  movRepo,
		log:      log.Component("inventory"),
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// IN y OUT exigen Quantity > 0; en ADJUSTMENT el signo indica la dirección y no puede ser 0.
type MovementInputDTO struct {
	CompanyID string
	UserID    string
	ItemID    string
	Type      string
	Quantity  int64
	Reference string
}

// MovementResult movimiento guardado y cantidad resultante de la pieza.
type MovementResult struct {
	Movement    *entity.InventoryMovement
	NewQuantity int64
}

// RegisterMovement inicia una transacción, bloquea la fila de la pieza, valida que la cantidad no quede
// negativa, la actualiza y guarda el movimiento al costo de compra vigente. Commit o Rollback los hace TxRunner.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*MovementResult, error) {
	delta, err := signedQuantity(input.Type, input.Quantity)
	if err != nil {
		return nil, err
	}
	if input.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("obtener pieza: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != input.CompanyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	res := &MovementResult{}
	err = uc.txRunner.Run(ctx, func(movRepo repository.InventoryMovementRepository, stockRepo repository.StockRepository) error {
		// Bloquea la fila de la pieza para evitar condiciones de carrera
		current, err := stockRepo.GetForUpdate(item.ID)
		if err != nil {
			return err
		}
		next := current + delta
		if next < 0 {
			return domain.ErrInsufficientStock
		}
		if err := stockRepo.SetQuantity(item.ID, next); err != nil {
			return err
		}
		mov := &entity.InventoryMovement{
			ID:            uuid.New().String(),
			ItemID:        item.ID,
			Type:          input.Type,
			Quantity:      delta,
			UnitCostPaise: item.BuyingCostPaise,
			Reference:     input.Reference,
			CreatedBy:     input.UserID,
			CreatedAt:     now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		res.Movement = mov
		res.NewQuantity = next
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Warn().Str("item_id", item.ID).Str("sku", item.SKU).Int64("quantity", delta).Msg("movimiento rechazado: stock insuficiente")
		}
		return nil, err
	}
	uc.log.Info().
		Str("item_id", item.ID).
		Str("type", input.Type).
		Int64("quantity", delta).
		Int64("new_quantity", res.NewQuantity).
		Msg("movimiento registrado")
	return res, nil
}

// ListMovements historial de movimientos de una pieza, más recientes primero.
func (uc *RegisterMovementUseCase) ListMovements(companyID, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, fmt.Errorf("obtener pieza: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return uc.movRepo.ListByItem(itemID, limit, offset)
}

func signedQuantity(movType string, qty int64) (int64, error) {
	switch movType {
	case entity.MovementTypeIN:
		if qty <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return qty, nil
	case entity.MovementTypeOUT:
		if qty <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return -qty, nil
	case entity.MovementTypeADJUSTMENT:
		if qty == 0 {
			return 0, domain.ErrInvalidInput
		}
		return qty, nil
	}
	return 0, domain.ErrInvalidInput
}
