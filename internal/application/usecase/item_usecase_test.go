package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	engine "github.com/jhoicas/joyeria-api/internal/domain/pricing"
	"github.com/jhoicas/joyeria-api/pkg/logger"
)

const companyID = "company-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ringRequest() dto.CreateItemRequest {
	return dto.CreateItemRequest{
		SKU:       "R-001",
		Name:      "Anillo solitario",
		Materials: []dto.LineRequest{{RefID: "AU22K", WeightGrams: d("5"), RatePerGram: d("5000")}},
		Charge:    dto.ChargePolicyDTO{Kind: "FIXED", Value: d("1000")},
		Quantity:  2,
	}
}

// storedRing pieza ya guardada equivalente a ringRequest.
func storedRing() *entity.JewelryItem {
	return &entity.JewelryItem{
		ID:        "item-1",
		CompanyID: companyID,
		SKU:       "R-001",
		Name:      "Anillo solitario",
		Composition: entity.Composition{
			Materials: []entity.StoredLine{{RefID: "AU22K", WeightMg: 5000, RatePaise: 500000}},
		},
		Variants: []entity.ItemVariant{
			{Code: "T12", Label: "Talla 12", Composition: entity.Composition{
				Materials: []entity.StoredLine{{RefID: "AU22K", WeightMg: 5500, RatePaise: 500000}},
			}},
		},
		WastagePercent:    decimal.Zero,
		ChargeKind:        "FIXED",
		ChargeValue:       d("1000"),
		GrossWeightMg:     5000,
		BuyingCostPaise:   2500000,
		SellingPricePaise: 2680000,
		Quantity:          2,
	}
}

func newItemUC(repo *mockItemRepo, gen *fakePDF) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(repo, gen, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestItemCreate_CotizaYGuardaEnUnidadesDeAlmacenamiento(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.JewelryItem")).Return(nil)

	out, err := newItemUC(repo, nil).Create(companyID, ringRequest())
	require.NoError(t, err)

	saved := repo.Calls[1].Arguments.Get(0).(*entity.JewelryItem)
	assert.Equal(t, int64(5000), saved.GrossWeightMg)
	assert.Equal(t, int64(2500000), saved.BuyingCostPaise)
	assert.Equal(t, int64(2680000), saved.SellingPricePaise)
	assert.False(t, saved.BuyingCostManual)
	assert.Equal(t, "FIXED", saved.ChargeKind)

	assert.Equal(t, "26800", out.SellingPrice.String())
	assert.Equal(t, "5", out.GrossWeight.String())
	repo.AssertExpectations(t)
}

func TestItemCreate_CostoManual(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.JewelryItem")).Return(nil)

	req := ringRequest()
	manual := d("30000")
	req.BuyingCost = &manual
	out, err := newItemUC(repo, nil).Create(companyID, req)
	require.NoError(t, err)

	assert.True(t, out.BuyingCostManual)
	assert.Equal(t, "30000", out.BuyingCost.String())
	// 30000 + 1000 + GST materiales 750 + GST cargo 50
	assert.Equal(t, "31800", out.SellingPrice.String())
}

// El precio guardado al crear debe coincidir con el desglose recalculado desde lo guardado.
func TestItemCreate_PrecioGuardadoCoincideConDesglose(t *testing.T) {
	for i := 0; i < 1000; i++ {
		cost := d("1000").Add(decimal.New(int64(i), -3))

		repo := new(mockItemRepo)
		repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(nil, nil)
		repo.On("Create", mock.AnythingOfType("*entity.JewelryItem")).Return(nil)

		req := ringRequest()
		req.WastagePercent = d("8")
		req.Charge = dto.ChargePolicyDTO{Kind: "PERCENTAGE", Value: d("10")}
		req.BuyingCost = &cost
		uc := newItemUC(repo, nil)
		_, err := uc.Create(companyID, req)
		require.NoError(t, err, "costo %s", cost)

		saved := repo.Calls[1].Arguments.Get(0).(*entity.JewelryItem)
		repo.On("GetByID", saved.ID).Return(saved, nil)

		b, err := uc.Breakdown(companyID, saved.ID)
		require.NoError(t, err, "costo %s", cost)
		stored := engine.PaiseToRupees(saved.SellingPricePaise)
		require.True(t, b.Quote.Breakdown.SellingPrice.Equal(stored),
			"costo %s: desglose %s guardado %s", cost, b.Quote.Breakdown.SellingPrice, stored)
		require.True(t, engine.PaiseToRupees(saved.BuyingCostPaise).Equal(engine.RoundMoney(cost)), "costo %s", cost)
	}
}

func TestItemCreate_RedondeaPoliticaAPrecisionGuardada(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.JewelryItem")).Return(nil)

	req := ringRequest()
	req.WastagePercent = d("8.0004")
	req.Charge = dto.ChargePolicyDTO{Kind: "PERCENTAGE", Value: d("10.12345")}
	_, err := newItemUC(repo, nil).Create(companyID, req)
	require.NoError(t, err)

	saved := repo.Calls[1].Arguments.Get(0).(*entity.JewelryItem)
	assert.Equal(t, "8", saved.WastagePercent.String())
	assert.Equal(t, "10.123", saved.ChargeValue.String())
}

func TestItemCreate_Errores(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(storedRing(), nil).Once()
	_, err := newItemUC(repo, nil).Create(companyID, ringRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	repo.On("GetByCompanyAndSKU", companyID, "R-001").Return(nil, nil)

	req := ringRequest()
	req.Charge.Kind = "SLAB"
	_, err = newItemUC(repo, nil).Create(companyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidChargePolicy)

	req = ringRequest()
	req.Materials[0].WeightGrams = d("-5")
	_, err = newItemUC(repo, nil).Create(companyID, req)
	assert.ErrorIs(t, err, domain.ErrNegativeUnitInput)

	req = ringRequest()
	req.Variants = []dto.VariantRequest{{Code: "T12"}, {Code: " T12 "}}
	_, err = newItemUC(repo, nil).Create(companyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = ringRequest()
	req.SKU = "  "
	_, err = newItemUC(repo, nil).Create(companyID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestItemUpdate_ConservaCostoManual(t *testing.T) {
	item := storedRing()
	item.BuyingCostPaise = 500000 // ₹5000 manual
	item.BuyingCostManual = true

	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(item, nil)
	repo.On("Update", item).Return(nil)

	out, err := newItemUC(repo, nil).Update(companyID, "item-1", dto.UpdateItemRequest{
		Materials: []dto.LineRequest{{RefID: "AU22K", WeightGrams: d("9"), RatePerGram: d("5000")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "5000", out.BuyingCost.String())
	assert.Equal(t, "9", out.GrossWeight.String())
	assert.Equal(t, "7400", out.SellingPrice.String())
	assert.True(t, out.BuyingCostManual)
}

func TestItemUpdate_EditarCostoACeroVuelveAAutomatico(t *testing.T) {
	item := storedRing()
	item.BuyingCostPaise = 500000
	item.BuyingCostManual = true

	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(item, nil)
	repo.On("Update", item).Return(nil)

	zero := decimal.Zero
	out, err := newItemUC(repo, nil).Update(companyID, "item-1", dto.UpdateItemRequest{BuyingCost: &zero})
	require.NoError(t, err)
	assert.False(t, out.BuyingCostManual)
	assert.Equal(t, "25000", out.BuyingCost.String())
	assert.Equal(t, "26800", out.SellingPrice.String())
}

func TestItemUpdate_CambioDePoliticaRecalcula(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(storedRing(), nil)
	repo.On("Update", mock.AnythingOfType("*entity.JewelryItem")).Return(nil)

	out, err := newItemUC(repo, nil).Update(companyID, "item-1", dto.UpdateItemRequest{
		Charge: &dto.ChargePolicyDTO{Kind: "PERCENTAGE", Value: d("10")},
	})
	require.NoError(t, err)
	assert.Equal(t, "28375", out.SellingPrice.String())
}

func TestItemGetByID_OtraEmpresaProhibido(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(storedRing(), nil)
	repo.On("GetByID", "nope").Return(nil, nil)

	_, err := newItemUC(repo, nil).GetByID("company-2", "item-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = newItemUC(repo, nil).GetByID(companyID, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desglose, variantes y PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestItemBreakdown_RecalculaDesdeLineasGuardadas(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(storedRing(), nil)

	out, err := newItemUC(repo, nil).Breakdown(companyID, "item-1")
	require.NoError(t, err)

	b := out.Quote.Breakdown
	assert.Equal(t, "25000", b.MaterialsCost.String())
	assert.Equal(t, "750", b.MaterialsGST.String())
	assert.Equal(t, "50", b.MakingChargeGST.String())
	assert.Equal(t, "26800", b.SellingPrice.String())
}

func TestItemBreakdown_UsaCostoManual(t *testing.T) {
	item := storedRing()
	item.BuyingCostPaise = 3000000
	item.BuyingCostManual = true
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(item, nil)

	out, err := newItemUC(repo, nil).Breakdown(companyID, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "30000", out.Quote.Breakdown.BuyingCost.String())
	assert.Equal(t, "25000", out.Quote.Breakdown.MaterialsCost.String())
	assert.Equal(t, "31800", out.Quote.Breakdown.SellingPrice.String())
}

func TestItemPriceVariants(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(storedRing(), nil)

	out, err := newItemUC(repo, nil).PriceVariants(companyID, "item-1")
	require.NoError(t, err)
	require.Len(t, out.Variants, 1)

	v := out.Variants[0]
	assert.Equal(t, "T12", v.Code)
	assert.Equal(t, "5.5", v.Quote.GrossWeight.String())
	// 27500 + 1000 + 825 + 50
	assert.Equal(t, "29375", v.Quote.Breakdown.SellingPrice.String())
}

func TestItemBreakdownPDF(t *testing.T) {
	repo := new(mockItemRepo)
	repo.On("GetByID", "item-1").Return(storedRing(), nil)
	gen := &fakePDF{}

	data, name, err := newItemUC(repo, gen).BreakdownPDF(context.Background(), companyID, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "desglose_R-001.pdf", name)
	assert.Equal(t, []byte("%PDF-1.4"), data)
	require.NotNil(t, gen.got)
	assert.Equal(t, "26800", gen.got.Quote.Breakdown.SellingPrice.String())
}
