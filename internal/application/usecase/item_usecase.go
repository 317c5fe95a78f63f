package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	apppricing "github.com/jhoicas/joyeria-api/internal/application/pricing"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
	"github.com/jhoicas/joyeria-api/internal/domain/repository"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

// ItemUseCase casos de uso de piezas de joyería. Peso bruto, costo de compra y precio de venta
// los calcula siempre el motor de precios; Quantity se maneja vía movimientos.
type ItemUseCase struct {
	repo      repository.ItemRepository
	generator BreakdownPDFGenerator
	log       *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, generator BreakdownPDFGenerator, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, generator: generator, log: log.Component("items")}
}

// Create crea una pieza y la cotiza. Si BuyingCost viene con un valor distinto de cero queda
// como costo manual; el recálculo posterior no lo pisa.
func (uc *ItemUseCase) Create(companyID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	name := strings.TrimSpace(in.Name)
	if sku == "" || name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCompanyAndSKU(companyID, sku)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	comp, err := apppricing.StoredComposition(in.Materials, in.Gemstones)
	if err != nil {
		return nil, err
	}
	variants, err := toVariants(in.Variants)
	if err != nil {
		return nil, err
	}
	policy, err := apppricing.ChargePolicyFromDTO(in.Charge)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.JewelryItem{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		SKU:            sku,
		Name:           name,
		Description:    in.Description,
		Composition:    comp,
		Variants:       variants,
		WastagePercent: engine.RoundPolicy(in.WastagePercent),
		ChargeKind:     string(policy.Kind),
		ChargeValue:    engine.RoundPolicy(policy.Value),
		Quantity:       in.Quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	var fields engine.DerivedFields
	if in.BuyingCost != nil {
		fields.EditBuyingCost(engine.RoundMoney(*in.BuyingCost))
	}
	if err := uc.reprice(item, fields); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("item_id", item.ID).
		Str("sku", item.SKU).
		Str("selling_price", engine.PaiseToRupees(item.SellingPricePaise).StringFixed(engine.MoneyPlaces)).
		Bool("buying_cost_manual", item.BuyingCostManual).
		Msg("pieza creada")
	return toItemResponse(item), nil
}

// GetByID obtiene una pieza de la empresa.
func (uc *ItemUseCase) GetByID(companyID, id string) (*dto.ItemResponse, error) {
	item, err := uc.load(companyID, id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update actualiza una pieza y la vuelve a cotizar con los campos derivados guardados:
// un costo manual previo se conserva salvo que BuyingCost venga en la petición.
func (uc *ItemUseCase) Update(companyID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.load(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Materials != nil {
		ms, err := apppricing.StoredLines(in.Materials)
		if err != nil {
			return nil, err
		}
		item.Composition.Materials = ms
	}
	if in.Gemstones != nil {
		gs, err := apppricing.StoredLines(in.Gemstones)
		if err != nil {
			return nil, err
		}
		item.Composition.Gemstones = gs
	}
	if in.Variants != nil {
		variants, err := toVariants(in.Variants)
		if err != nil {
			return nil, err
		}
		item.Variants = variants
	}
	if in.WastagePercent != nil {
		item.WastagePercent = engine.RoundPolicy(*in.WastagePercent)
	}
	if in.Charge != nil {
		policy, err := apppricing.ChargePolicyFromDTO(*in.Charge)
		if err != nil {
			return nil, err
		}
		item.ChargeKind = string(policy.Kind)
		item.ChargeValue = engine.RoundPolicy(policy.Value)
	}

	// El motor trabaja con los mismos valores que quedan guardados.
	fields := apppricing.FieldsFromItem(item)
	if in.BuyingCost != nil {
		fields.EditBuyingCost(engine.RoundMoney(*in.BuyingCost))
	}
	before := item.SellingPricePaise
	if err := uc.reprice(item, fields); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	if before != item.SellingPricePaise {
		uc.log.Info().
			Str("item_id", item.ID).
			Str("sku", item.SKU).
			Str("selling_price", engine.PaiseToRupees(item.SellingPricePaise).StringFixed(engine.MoneyPlaces)).
			Msg("precio de venta actualizado")
	}
	return toItemResponse(item), nil
}

// List lista piezas de la empresa con filtros y paginación.
func (uc *ItemUseCase) List(companyID string, filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(companyID, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ItemListResponse{
		Items: lo.Map(list, func(it *entity.JewelryItem, _ int) dto.ItemResponse { return *toItemResponse(it) }),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete elimina una pieza de la empresa.
func (uc *ItemUseCase) Delete(companyID, id string) error {
	item, err := uc.load(companyID, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(item.ID); err != nil {
		return err
	}
	uc.log.Warn().Str("item_id", item.ID).Str("sku", item.SKU).Msg("pieza eliminada")
	return nil
}

// Breakdown recalcula el desglose de la pieza desde sus líneas guardadas (vista de detalle).
// Respeta el costo de compra manual si la pieza lo tiene.
func (uc *ItemUseCase) Breakdown(companyID, id string) (*dto.ItemBreakdownResponse, error) {
	item, err := uc.load(companyID, id)
	if err != nil {
		return nil, err
	}
	return breakdownOf(item)
}

// PriceVariants cotiza cada variante con su composición y la merma y cargo de la pieza.
// Las variantes usan siempre el costo de compra automático.
func (uc *ItemUseCase) PriceVariants(companyID, id string) (*dto.VariantPriceListResponse, error) {
	item, err := uc.load(companyID, id)
	if err != nil {
		return nil, err
	}
	out := &dto.VariantPriceListResponse{ItemID: item.ID, Variants: make([]dto.VariantPriceResponse, 0, len(item.Variants))}
	for _, v := range item.Variants {
		in, err := apppricing.InputsFromItem(item, v.Composition)
		if err != nil {
			return nil, err
		}
		r, err := engine.Compose(in)
		if err != nil {
			return nil, fmt.Errorf("variante %s: %w", v.Code, err)
		}
		out.Variants = append(out.Variants, dto.VariantPriceResponse{
			Code:  v.Code,
			Label: v.Label,
			Quote: apppricing.ToQuoteResponse(r),
		})
	}
	return out, nil
}

// BreakdownPDF genera el reporte PDF del desglose. Devuelve bytes y nombre de archivo.
func (uc *ItemUseCase) BreakdownPDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	item, err := uc.load(companyID, id)
	if err != nil {
		return nil, "", err
	}
	b, err := breakdownOf(item)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateBreakdownPDF(ctx, item, *b)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("desglose_%s.pdf", item.SKU), nil
}

func (uc *ItemUseCase) load(companyID, id string) (*entity.JewelryItem, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

// reprice pasa la pieza por el motor desde sus unidades de almacenamiento y guarda los campos derivados.
func (uc *ItemUseCase) reprice(item *entity.JewelryItem, fields engine.DerivedFields) error {
	in, err := apppricing.InputsFromItem(item, item.Composition)
	if err != nil {
		return err
	}
	fields, _, err = engine.Recompute(fields, in)
	if err != nil {
		return err
	}
	return apppricing.ApplyFieldsToItem(item, fields)
}

func breakdownOf(item *entity.JewelryItem) (*dto.ItemBreakdownResponse, error) {
	in, err := apppricing.InputsFromItem(item, item.Composition)
	if err != nil {
		return nil, err
	}
	in.BuyingCostOverride = apppricing.FieldsFromItem(item).Override()
	r, err := engine.Compose(in)
	if err != nil {
		return nil, err
	}
	return &dto.ItemBreakdownResponse{
		ItemID: item.ID,
		SKU:    item.SKU,
		Quote:  apppricing.ToQuoteResponse(r),
	}, nil
}

func toVariants(in []dto.VariantRequest) ([]entity.ItemVariant, error) {
	codes := lo.Map(in, func(v dto.VariantRequest, _ int) string { return strings.TrimSpace(v.Code) })
	if lo.Contains(codes, "") || len(lo.Uniq(codes)) != len(codes) {
		return nil, fmt.Errorf("código de variante vacío o repetido: %w", domain.ErrInvalidInput)
	}
	out := make([]entity.ItemVariant, 0, len(in))
	for i, v := range in {
		comp, err := apppricing.StoredComposition(v.Materials, v.Gemstones)
		if err != nil {
			return nil, fmt.Errorf("variante %s: %w", codes[i], err)
		}
		out = append(out, entity.ItemVariant{Code: codes[i], Label: v.Label, Composition: comp})
	}
	return out, nil
}

func toItemResponse(it *entity.JewelryItem) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		SKU:         it.SKU,
		Name:        it.Name,
		Description: it.Description,
		Materials:   apppricing.LineResponses(it.Composition.Materials),
		Gemstones:   apppricing.LineResponses(it.Composition.Gemstones),
		Variants: lo.Map(it.Variants, func(v entity.ItemVariant, _ int) dto.VariantResponse {
			return dto.VariantResponse{
				Code:      v.Code,
				Label:     v.Label,
				Materials: apppricing.LineResponses(v.Composition.Materials),
				Gemstones: apppricing.LineResponses(v.Composition.Gemstones),
			}
		}),
		WastagePercent:   it.WastagePercent,
		Charge:           dto.ChargePolicyDTO{Kind: it.ChargeKind, Value: it.ChargeValue},
		GrossWeight:      engine.MilligramsToGrams(it.GrossWeightMg),
		BuyingCost:       engine.PaiseToRupees(it.BuyingCostPaise),
		BuyingCostManual: it.BuyingCostManual,
		SellingPrice:     engine.PaiseToRupees(it.SellingPricePaise),
		Quantity:         it.Quantity,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
