package usecase

import (
	"context"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// BreakdownPDFGenerator genera el reporte PDF del desglose de precio de una pieza.
// La implementación vive en infrastructure/pdf.
type BreakdownPDFGenerator interface {
	GenerateBreakdownPDF(ctx context.Context, item *entity.JewelryItem, breakdown dto.ItemBreakdownResponse) ([]byte, error)
}
