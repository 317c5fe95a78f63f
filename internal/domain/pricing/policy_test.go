package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/joyeria-api/internal/domain"
	"github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

func TestRecompute_CostoAutomaticoSeRecalcula(t *testing.T) {
	var fields pricing.DerivedFields
	in := goldRing(pricing.ChargePolicy{Kind: pricing.ChargeFixed, Value: dec("1000")})

	fields, _, err := pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "25000", fields.BuyingCost)

	// Cambio de composición: el costo sin edición manual sigue a la composición.
	in.Materials[0].WeightGrams = dec("6")
	fields, _, err = pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "30000", fields.BuyingCost)
	assertDecimal(t, "6", fields.GrossWeight)
	assert.False(t, fields.BuyingCostManual)
}

func TestRecompute_OverrideManualSobrevive(t *testing.T) {
	var fields pricing.DerivedFields
	in := goldRing(pricing.ChargePolicy{Kind: pricing.ChargeFixed, Value: dec("1000")})

	fields.EditBuyingCost(dec("5000"))
	fields, r, err := pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "5000", fields.BuyingCost)
	assertDecimal(t, "5000", r.Breakdown.BuyingCost)

	in.Materials[0].WeightGrams = dec("9")
	fields, r, err = pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "5000", fields.BuyingCost, "la edición manual gana sobre el recálculo")
	// Peso bruto y precio de venta sí se recalculan.
	assertDecimal(t, "9", fields.GrossWeight)
	assertDecimal(t, r.Breakdown.SellingPrice.String(), fields.SellingPrice)
	// 5000 + 1000 + GST materiales 9*5000*3% = 1350 + GST cargo 50
	assertDecimal(t, "7400", fields.SellingPrice)
}

func TestRecompute_EdicionACeroVuelveAAutomatico(t *testing.T) {
	var fields pricing.DerivedFields
	in := goldRing(pricing.ChargePolicy{Kind: pricing.ChargeFixed, Value: dec("1000")})

	fields.EditBuyingCost(dec("5000"))
	fields.EditBuyingCost(dec("0"))
	assert.Nil(t, fields.Override())

	fields, _, err := pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "25000", fields.BuyingCost)
}

func TestRecompute_PesoYPrecioSiempreSeSobrescriben(t *testing.T) {
	fields := pricing.DerivedFields{GrossWeight: dec("99"), SellingPrice: dec("1")}
	in := goldRing(pricing.ChargePolicy{Kind: pricing.ChargeFixed, Value: dec("1000")})

	fields, _, err := pricing.Recompute(fields, in)
	require.NoError(t, err)
	assertDecimal(t, "5", fields.GrossWeight)
	assertDecimal(t, "26800", fields.SellingPrice)
}

func TestRecompute_IgnoraOverrideDeEntrada(t *testing.T) {
	in := goldRing(pricing.ChargePolicy{Kind: pricing.ChargeFixed, Value: dec("1000")})
	stale := dec("1")
	in.BuyingCostOverride = &stale

	fields, _, err := pricing.Recompute(pricing.DerivedFields{}, in)
	require.NoError(t, err)
	assertDecimal(t, "25000", fields.BuyingCost)
}

func TestRecompute_ErrorConservaCampos(t *testing.T) {
	fields := pricing.DerivedFields{GrossWeight: dec("5"), BuyingCost: dec("25000"), SellingPrice: dec("26800")}
	in := goldRing(pricing.ChargePolicy{Kind: "SLAB"})

	got, _, err := pricing.Recompute(fields, in)
	assert.ErrorIs(t, err, domain.ErrInvalidChargePolicy)
	assert.Equal(t, fields, got)
}

func TestReset_LimpiaOverride(t *testing.T) {
	var fields pricing.DerivedFields
	fields.EditBuyingCost(dec("5000"))
	require.NotNil(t, fields.Override())

	fields.Reset()
	assert.Nil(t, fields.Override())
	assert.False(t, fields.BuyingCostManual)
	assert.True(t, fields.BuyingCost.IsZero())
}
