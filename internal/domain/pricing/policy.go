package pricing

import "github.com/shopspring/decimal"

// DerivedFields campos autocalculados visibles y editables en el formulario.
//
// Regla de sobrescritura (intencionalmente asimétrica):
//   - GrossWeight y SellingPrice se sobrescriben en cada recálculo, aunque el usuario los haya editado.
//   - BuyingCost se sobrescribe solo mientras no haya edición manual; la primera edición
//     distinta de cero gana hasta que el formulario se reinicia.
type DerivedFields struct {
	GrossWeight      decimal.Decimal
	BuyingCost       decimal.Decimal
	SellingPrice     decimal.Decimal
	BuyingCostManual bool
}

// EditBuyingCost registra una edición del usuario sobre el costo de compra.
// Volver a cero devuelve el campo al modo automático.
func (f *DerivedFields) EditBuyingCost(v decimal.Decimal) {
	f.BuyingCost = v
	f.BuyingCostManual = !v.IsZero()
}

// Reset limpia los campos derivados y la marca de edición manual (pieza nueva).
func (f *DerivedFields) Reset() {
	*f = DerivedFields{}
}

// Override devuelve el costo de compra a pasar a Compose, o nil si es automático.
func (f DerivedFields) Override() *decimal.Decimal {
	if !f.BuyingCostManual {
		return nil
	}
	v := f.BuyingCost
	return &v
}

// Apply vuelca un resultado del motor sobre los campos según la regla de sobrescritura.
func (f DerivedFields) Apply(r Result) DerivedFields {
	f.GrossWeight = r.GrossWeight
	f.SellingPrice = r.Breakdown.SellingPrice
	if !f.BuyingCostManual {
		f.BuyingCost = RoundMoney(r.Breakdown.BuyingCost)
	}
	return f
}

// Recompute punto de entrada único para toda pantalla que muestre o edite una pieza con precio:
// usa el costo manual (si existe) como override, ejecuta Compose y aplica la regla.
// Cualquier BuyingCostOverride presente en in se ignora a favor del estado de los campos.
func Recompute(f DerivedFields, in Inputs) (DerivedFields, Result, error) {
	in.BuyingCostOverride = f.Override()
	r, err := Compose(in)
	if err != nil {
		return f, Result{}, err
	}
	return f.Apply(r), r, nil
}
