package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "Rs. 26,800.00", FormatRupees(decimal.NewFromInt(26800)))
	assert.Equal(t, "Rs. 0.50", FormatRupees(decimal.RequireFromString("0.499")))
	assert.Equal(t, "Rs. 950.00", FormatRupees(decimal.NewFromInt(950)))
}

func TestFormatGrams(t *testing.T) {
	assert.Equal(t, "5.500", formatGrams(decimal.RequireFromString("5.5")))
	assert.Equal(t, "1.235", formatGrams(decimal.RequireFromString("1.2345")))
}

func TestGenerateBreakdownPDF(t *testing.T) {
	d := decimal.RequireFromString
	item := &entity.JewelryItem{ID: "item-1", SKU: "R-001", Name: "Anillo solitario"}
	b := dto.ItemBreakdownResponse{
		ItemID: "item-1",
		SKU:    "R-001",
		Quote: dto.QuoteResponse{
			GrossWeight: d("5.5"),
			Breakdown: dto.BreakdownDTO{
				MaterialsCost: d("25000"), GemstonesCost: d("5000"), BuyingCost: d("30000"),
				MakingChargeAmount: d("1000"), MaterialsGST: d("750"), GemstonesGST: d("150"),
				MakingChargeGST: d("50"), SellingPrice: d("31950"),
			},
			Lines: []dto.LineCostDTO{
				{Kind: "MATERIAL", RefID: "AU22K", WeightGrams: d("5"), RatePerGram: d("5000"), Cost: d("25000")},
				{Kind: "GEMSTONE", RefID: "RUBY", WeightGrams: d("0.5"), RatePerGram: d("10000"), Cost: d("5000")},
			},
		},
	}

	out, err := NewMarotoBreakdownGenerator().GenerateBreakdownPDF(context.Background(), item, b)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}
