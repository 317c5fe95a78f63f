package inventory

import (
	"context"

	"github.com/samber/lo"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInputDTO).
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, companyID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	res, err := uc.RegisterMovement(ctx, MovementInputDTO{
		CompanyID: companyID,
		UserID:    userID,
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reference: in.Reference,
	})
	if err != nil {
		return nil, err
	}
	out := toMovementResponse(res.Movement)
	out.NewQuantity = res.NewQuantity
	return &out, nil
}

// ListMovementsResponse igual que ListMovements pero en DTOs.
func (uc *RegisterMovementUseCase) ListMovementsResponse(companyID, itemID string, limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.ListMovements(companyID, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(m *entity.InventoryMovement, _ int) dto.MovementResponse { return toMovementResponse(m) }), nil
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitCost:  engine.PaiseToRupees(m.UnitCostPaise),
		CreatedAt: m.CreatedAt,
	}
}
