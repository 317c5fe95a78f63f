package pricing_test

import (
	"testing"

	"github.com/jhoicas/joyeria-api/internal/domain/pricing"
)

func TestComputeGST_TasasPorComponente(t *testing.T) {
	g := pricing.ComputeGST(dec("25000"), dec("5000"), dec("1000"))

	assertDecimal(t, "750", g.Materials)
	assertDecimal(t, "150", g.Gemstones)
	assertDecimal(t, "50", g.MakingCharge)
	assertDecimal(t, "950", g.Total())
}

func TestComputeGST_BasesEnCero(t *testing.T) {
	g := pricing.ComputeGST(dec("0"), dec("0"), dec("0"))
	assertDecimal(t, "0", g.Total())
}
